package observer

import "fmt"

// Notification is a named message routed through the bus.
// Fields are unexported so a notification cannot change while it is in flight.
type Notification struct {
	name string
	body any
	typ  string
}

// NewNotification creates a notification. Body and typ are optional.
func NewNotification(name string, body any, typ string) Notification {
	return Notification{
		name: name,
		body: body,
		typ:  typ,
	}
}

// Name returns the notification name.
func (n Notification) Name() string {
	return n.name
}

// Body returns the opaque payload, or nil.
func (n Notification) Body() any {
	return n.body
}

// Type returns the discriminator, or an empty string.
func (n Notification) Type() string {
	return n.typ
}

func (n Notification) String() string {
	body := "<nil>"
	if n.body != nil {
		body = fmt.Sprint(n.body)
	}
	typ := "<nil>"
	if n.typ != "" {
		typ = n.typ
	}
	return fmt.Sprintf("Notification Name: %s\nBody: %s\nType: %s", n.name, body, typ)
}
