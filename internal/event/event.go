// internal/event/event.go
package event

// EventType: тип события
type EventType string

// Event is one published transition.
type Event struct {
	Type EventType
	Data interface{} // полезная нагрузка, см. types.go
}

// Listener: интерфейс подписчика
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher рассылает события подписчикам. Синхронный: Dispatch вызывает
// подписчиков в порядке подписки на горутине вызывающего.
type Dispatcher struct {
	listeners map[EventType][]Listener
	wildcard  []Listener
}

// NewDispatcher создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на события типа eventType
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener на события всех типов.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.wildcard = append(d.wildcard, listener)
}

// Unsubscribe отписывает listener. Функции (ListenerFunc) несравнимы, поэтому
// отписать можно только listener comparable-типа.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch отправляет событие всем подписчикам. nil-диспетчер ничего не делает.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.wildcard {
		listener.OnEvent(event)
	}
}
