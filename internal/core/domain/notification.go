package domain

type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
	NotifyWarning NotificationType = "warning"
	NotifyInfo    NotificationType = "info"
)

// Notification is one transient feedback message. ID is unique and
// monotonic within a store instance.
type Notification struct {
	ID       int64
	Type     NotificationType
	Title    string
	Message  string
	AutoHide bool
}
