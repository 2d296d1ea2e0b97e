package services

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"
)

// Gate errors, checked in this order before any Bluetooth operation. Each
// maps to its own remediation step on the client.
var (
	ErrBluetoothUnsupported = errors.New("bluetooth is not supported on this device")
	ErrBluetoothDisabled    = errors.New("bluetooth is disabled")
	ErrBluetoothPermission  = errors.New("bluetooth permissions not granted")
	ErrScanInProgress       = errors.New("scan already in progress")
	ErrDeviceUnknown        = errors.New("device not discovered")
)

// Peripheral is one discovered smart-bottle candidate.
type Peripheral struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Adapter abstracts the platform Bluetooth stack. Discover streams found
// peripherals until stop closes.
type Adapter interface {
	Supported() bool
	Enabled() bool
	HasPermissions() bool
	Discover(stop <-chan struct{}) <-chan Peripheral
}

// DeviceEvent is published on the manager's event channel.
type DeviceEvent struct {
	Kind       string      `json:"kind"` // "device.discovered" | "device.connected" | "device.disconnected" | "scan.stopped"
	Peripheral *Peripheral `json:"peripheral,omitempty"`
}

const defaultScanWindow = 10 * time.Second

// DeviceManager tracks scan state, the connected peripheral and the last
// volume the bottle reported. The reported volume is observable but never
// merged into the ledger.
type DeviceManager struct {
	adapter    Adapter
	scanWindow time.Duration

	mu         sync.Mutex
	scanning   bool
	stopScan   chan struct{}
	devices    map[string]Peripheral
	order      []string
	connected  *Peripheral
	lastVolume float64

	events chan DeviceEvent
}

func NewDeviceManager(adapter Adapter) *DeviceManager {
	return &DeviceManager{
		adapter:    adapter,
		scanWindow: defaultScanWindow,
		devices:    make(map[string]Peripheral),
		events:     make(chan DeviceEvent, 64),
	}
}

// Events is the stream the presentation layer consumes.
func (m *DeviceManager) Events() <-chan DeviceEvent {
	return m.events
}

// Status reports each gate separately so the client can show the right
// remediation step.
func (m *DeviceManager) Status() map[string]bool {
	return map[string]bool{
		"supported":       m.adapter.Supported(),
		"enabled":         m.adapter.Enabled(),
		"has_permissions": m.adapter.HasPermissions(),
	}
}

func (m *DeviceManager) gate() error {
	if !m.adapter.Supported() {
		return ErrBluetoothUnsupported
	}
	if !m.adapter.Enabled() {
		return ErrBluetoothDisabled
	}
	if !m.adapter.HasPermissions() {
		return ErrBluetoothPermission
	}
	return nil
}

// StartScan clears previous results and collects peripherals until the
// scan window elapses. Duplicate identities are ignored.
func (m *DeviceManager) StartScan() error {
	if err := m.gate(); err != nil {
		return err
	}

	m.mu.Lock()
	if m.scanning {
		m.mu.Unlock()
		return ErrScanInProgress
	}
	m.scanning = true
	m.stopScan = make(chan struct{})
	m.devices = make(map[string]Peripheral)
	m.order = nil
	stop := m.stopScan
	m.mu.Unlock()

	found := m.adapter.Discover(stop)
	go func() {
		timer := time.NewTimer(m.scanWindow)
		defer timer.Stop()
		for {
			select {
			case p, ok := <-found:
				if !ok {
					m.StopScan()
					return
				}
				m.addDevice(p)
			case <-timer.C:
				m.StopScan()
				return
			case <-stop:
				return
			}
		}
	}()
	return nil
}

// StopScan ends an active scan early; no-op otherwise.
func (m *DeviceManager) StopScan() {
	m.mu.Lock()
	if !m.scanning {
		m.mu.Unlock()
		return
	}
	m.scanning = false
	close(m.stopScan)
	m.stopScan = nil
	m.mu.Unlock()
	m.publish(DeviceEvent{Kind: "scan.stopped"})
}

func (m *DeviceManager) addDevice(p Peripheral) {
	m.mu.Lock()
	if !m.scanning {
		m.mu.Unlock()
		return
	}
	if _, seen := m.devices[p.ID]; seen {
		m.mu.Unlock()
		return
	}
	m.devices[p.ID] = p
	m.order = append(m.order, p.ID)
	m.mu.Unlock()
	m.publish(DeviceEvent{Kind: "device.discovered", Peripheral: &p})
}

func (m *DeviceManager) Scanning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scanning
}

// Devices lists discovered peripherals in discovery order.
func (m *DeviceManager) Devices() []Peripheral {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Peripheral, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.devices[id])
	}
	return out
}

// Connect attaches to a previously discovered peripheral.
func (m *DeviceManager) Connect(deviceID string) (Peripheral, error) {
	if err := m.gate(); err != nil {
		return Peripheral{}, err
	}

	m.mu.Lock()
	p, ok := m.devices[deviceID]
	if !ok {
		m.mu.Unlock()
		return Peripheral{}, ErrDeviceUnknown
	}
	m.connected = &p
	m.mu.Unlock()
	m.publish(DeviceEvent{Kind: "device.connected", Peripheral: &p})
	return p, nil
}

func (m *DeviceManager) Disconnect() {
	m.mu.Lock()
	p := m.connected
	m.connected = nil
	m.mu.Unlock()
	if p != nil {
		m.publish(DeviceEvent{Kind: "device.disconnected", Peripheral: p})
	}
}

// Connected returns the attached peripheral, or nil.
func (m *DeviceManager) Connected() *Peripheral {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.connected == nil {
		return nil
	}
	p := *m.connected
	return &p
}

// SetReportedVolume records the bottle's externally reported volume.
func (m *DeviceManager) SetReportedVolume(v float64) {
	m.mu.Lock()
	m.lastVolume = v
	m.mu.Unlock()
}

func (m *DeviceManager) LastReportedVolume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastVolume
}

func (m *DeviceManager) publish(ev DeviceEvent) {
	select {
	case m.events <- ev:
	default: // slow consumer, drop
	}
}

// StaticAdapter stands in for a real platform Bluetooth stack. Its
// peripherals stream out once per Discover call, then the channel stays
// open until the scan window closes.
type StaticAdapter struct {
	SupportedFlag   bool
	EnabledFlag     bool
	PermissionsFlag bool
	Peripherals     []Peripheral
}

func (a *StaticAdapter) Supported() bool      { return a.SupportedFlag }
func (a *StaticAdapter) Enabled() bool        { return a.EnabledFlag }
func (a *StaticAdapter) HasPermissions() bool { return a.PermissionsFlag }

func (a *StaticAdapter) Discover(stop <-chan struct{}) <-chan Peripheral {
	out := make(chan Peripheral)
	go func() {
		defer close(out)
		for _, p := range a.Peripherals {
			select {
			case out <- p:
			case <-stop:
				return
			}
		}
		<-stop
	}()
	return out
}

// NewEnvAdapter builds a StaticAdapter from the environment: BLE_SUPPORTED,
// BLE_ENABLED and BLE_PERMISSIONS default to true; BLE_PERIPHERALS is an
// optional JSON array of {id, name}.
func NewEnvAdapter() *StaticAdapter {
	flag := func(name string) bool { return os.Getenv(name) != "false" }

	var peripherals []Peripheral
	if raw := os.Getenv("BLE_PERIPHERALS"); raw != "" {
		_ = json.Unmarshal([]byte(raw), &peripherals)
	}
	return &StaticAdapter{
		SupportedFlag:   flag("BLE_SUPPORTED"),
		EnabledFlag:     flag("BLE_ENABLED"),
		PermissionsFlag: flag("BLE_PERMISSIONS"),
		Peripherals:     peripherals,
	}
}
