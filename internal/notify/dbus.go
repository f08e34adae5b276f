package notify

import (
	"os"

	"github.com/godbus/dbus/v5"

	"rusty-sweeper/internal/alert"
	"rusty-sweeper/internal/diskstatus"
)

const (
	dbusDest = "org.freedesktop.Notifications"
	dbusPath = "/org/freedesktop/Notifications"
)

// DBusNotifier sends desktop notifications via the freedesktop
// Notifications spec.
type DBusNotifier struct{}

func NewDBusNotifier() *DBusNotifier { return &DBusNotifier{} }

func (d *DBusNotifier) Name() string { return "dbus" }

// Available requires a graphical-session environment hint.
func (d *DBusNotifier) Available() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func (d *DBusNotifier) SendAlert(level alert.Level, status diskstatus.Status) error {
	return d.Send(titleFor(level), bodyFor(status), urgencyFor(level))
}

func (d *DBusNotifier) Send(title, body string, urgency Urgency) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return err
	}

	expire := expireTimeoutMS(urgency)
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(dbusUrgency(urgency))),
	}

	obj := conn.Object(dbusDest, dbus.ObjectPath(dbusPath))
	call := obj.Call(dbusDest+".Notify", 0,
		"Rusty Sweeper", uint32(0), "drive-harddisk", title, body,
		[]string{}, hints, expire)
	return call.Err
}

func dbusUrgency(u Urgency) int {
	switch u {
	case Low:
		return 0
	case NormalUrgency:
		return 1
	default:
		return 2
	}
}

// expireTimeoutMS follows the spec: Critical never expires, Normal
// waits 10s, Low waits 5s.
func expireTimeoutMS(u Urgency) int32 {
	switch u {
	case CriticalUrgency:
		return 0
	case NormalUrgency:
		return 10_000
	default:
		return 5_000
	}
}
