package httphandler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/notifications (200 OK)
// DELETE v1/notifications/{id} (200 OK)

type NotificationsHandler struct {
	notifier port.Notifier
	reader   port.NotificationReader
}

func RegisterNotifications(
	mux *http.ServeMux, notifier port.Notifier, reader port.NotificationReader,
) {
	h := NotificationsHandler{notifier, reader}
	mux.HandleFunc("GET /v1/notifications", h.GetNotifications)
	mux.HandleFunc("DELETE /v1/notifications/{id}", h.Dismiss)
}

func (h NotificationsHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	const op = "NotificationsHandler.GetNotifications"
	log := slog.With("op", op)

	ns := h.reader.Notifications()
	out := make([]Notification, 0, len(ns))
	for _, n := range ns {
		out = append(out, Notification{
			ID:       n.ID,
			Type:     string(n.Type),
			Title:    n.Title,
			Message:  n.Message,
			AutoHide: n.AutoHide,
		})
	}
	writeJSON(w, log, out)
}

// Dismiss removes by id; dismissing an already-expired notification is fine.
func (h NotificationsHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid notification id", http.StatusBadRequest)
		return
	}
	h.notifier.RemoveNotification(id)
	w.WriteHeader(http.StatusOK)
}
