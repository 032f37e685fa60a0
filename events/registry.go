package events

import (
	"reflect"
	"strings"
	"sync"
)

var (
	registryMu    sync.RWMutex
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
	registryOnce  sync.Once
)

// RegisterType maps a string name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct (e.g., &ScrollPayload{})
// Pass nil if the event has no payload
func RegisterType(name string, et EventType, payloadInstance any) {
	registryMu.Lock()
	defer registryMu.Unlock()
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a given name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	InitRegistry()
	registryMu.RLock()
	defer registryMu.RUnlock()
	if et, ok := nameToType[name]; ok {
		return et, true
	}
	for n, et := range nameToType {
		if strings.EqualFold(n, name) {
			return et, true
		}
	}
	return EventNone, false
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	InitRegistry()
	registryMu.RLock()
	defer registryMu.RUnlock()
	return typeToName[et]
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// Returns nil if no payload is registered
func NewPayloadStruct(et EventType) any {
	InitRegistry()
	registryMu.RLock()
	t, ok := typeToPayload[et]
	registryMu.RUnlock()
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

// InitRegistry populates the registry with all gallery events
// Safe to call any number of times; registration happens once per process
func InitRegistry() {
	registryOnce.Do(func() {
		RegisterType("EventNone", EventNone, nil)
		RegisterType("EventScroll", EventScroll, &ScrollPayload{})
		RegisterType("EventPointerMove", EventPointerMove, &PointerPayload{})
		RegisterType("EventPointerLeave", EventPointerLeave, nil)
		RegisterType("EventFocus", EventFocus, &FocusPayload{})
		RegisterType("EventBlur", EventBlur, nil)
		RegisterType("EventActivate", EventActivate, &ActivatePayload{})
		RegisterType("EventViewportResize", EventViewportResize, &ViewportPayload{})
		RegisterType("EventItemResize", EventItemResize, &ItemSizePayload{})
		RegisterType("EventDeviceClass", EventDeviceClass, &DeviceClassPayload{})
		RegisterType("EventRelayout", EventRelayout, nil)
		RegisterType("EventPinRefresh", EventPinRefresh, nil)
	})
}
