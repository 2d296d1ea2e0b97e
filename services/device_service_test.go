package services

import (
	"errors"
	"testing"
	"time"
)

func readyAdapter(peripherals ...Peripheral) *StaticAdapter {
	return &StaticAdapter{
		SupportedFlag:   true,
		EnabledFlag:     true,
		PermissionsFlag: true,
		Peripherals:     peripherals,
	}
}

func waitForScanEnd(t *testing.T, m *DeviceManager) {
	t.Helper()
	deadline := time.After(time.Second)
	for m.Scanning() {
		select {
		case <-deadline:
			t.Fatal("scan did not stop")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestGatesCheckedInOrder(t *testing.T) {
	cases := []struct {
		name    string
		adapter *StaticAdapter
		want    error
	}{
		{"unsupported", &StaticAdapter{}, ErrBluetoothUnsupported},
		{"disabled", &StaticAdapter{SupportedFlag: true}, ErrBluetoothDisabled},
		{"no permissions", &StaticAdapter{SupportedFlag: true, EnabledFlag: true}, ErrBluetoothPermission},
	}
	for _, tc := range cases {
		m := NewDeviceManager(tc.adapter)
		if err := m.StartScan(); !errors.Is(err, tc.want) {
			t.Errorf("%s: StartScan err = %v, want %v", tc.name, err, tc.want)
		}
		if _, err := m.Connect("any"); !errors.Is(err, tc.want) {
			t.Errorf("%s: Connect err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestScanDedupsAndAutoStops(t *testing.T) {
	bottle := Peripheral{ID: "AA:BB", Name: "SmartBottle"}
	m := NewDeviceManager(readyAdapter(
		bottle,
		Peripheral{ID: "CC:DD", Name: "OtherBottle"},
		bottle, // advertised twice
	))
	m.scanWindow = 30 * time.Millisecond

	if err := m.StartScan(); err != nil {
		t.Fatalf("StartScan: %v", err)
	}
	waitForScanEnd(t, m)

	devices := m.Devices()
	if len(devices) != 2 {
		t.Fatalf("Devices() = %+v, want 2 unique", devices)
	}
	if devices[0].ID != "AA:BB" || devices[1].ID != "CC:DD" {
		t.Errorf("discovery order lost: %+v", devices)
	}
}

func TestSecondScanWhileRunningConflicts(t *testing.T) {
	m := NewDeviceManager(readyAdapter())
	m.scanWindow = 200 * time.Millisecond

	if err := m.StartScan(); err != nil {
		t.Fatalf("StartScan: %v", err)
	}
	if err := m.StartScan(); !errors.Is(err, ErrScanInProgress) {
		t.Errorf("second StartScan err = %v, want ErrScanInProgress", err)
	}
	m.StopScan()
	if m.Scanning() {
		t.Error("still scanning after StopScan")
	}
}

func TestConnectLifecycle(t *testing.T) {
	bottle := Peripheral{ID: "AA:BB", Name: "SmartBottle"}
	m := NewDeviceManager(readyAdapter(bottle))
	m.scanWindow = 30 * time.Millisecond

	if err := m.StartScan(); err != nil {
		t.Fatalf("StartScan: %v", err)
	}
	waitForScanEnd(t, m)

	if _, err := m.Connect("unknown"); !errors.Is(err, ErrDeviceUnknown) {
		t.Errorf("Connect(unknown) err = %v, want ErrDeviceUnknown", err)
	}

	p, err := m.Connect("AA:BB")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if p != bottle {
		t.Errorf("Connect = %+v, want %+v", p, bottle)
	}
	if got := m.Connected(); got == nil || got.ID != "AA:BB" {
		t.Errorf("Connected() = %+v", got)
	}

	m.Disconnect()
	if m.Connected() != nil {
		t.Error("still connected after Disconnect")
	}
}

func TestScanEventsPublished(t *testing.T) {
	m := NewDeviceManager(readyAdapter(Peripheral{ID: "AA:BB", Name: "SmartBottle"}))
	m.scanWindow = 30 * time.Millisecond

	if err := m.StartScan(); err != nil {
		t.Fatalf("StartScan: %v", err)
	}
	waitForScanEnd(t, m)

	var kinds []string
	for {
		select {
		case ev := <-m.Events():
			kinds = append(kinds, ev.Kind)
			continue
		default:
		}
		break
	}
	if len(kinds) != 2 || kinds[0] != "device.discovered" || kinds[1] != "scan.stopped" {
		t.Errorf("events = %v, want [device.discovered scan.stopped]", kinds)
	}
}

func TestReportedVolumeIsObservableOnly(t *testing.T) {
	m := NewDeviceManager(readyAdapter())
	if got := m.LastReportedVolume(); got != 0 {
		t.Errorf("initial volume = %v, want 0", got)
	}
	m.SetReportedVolume(250)
	if got := m.LastReportedVolume(); got != 250 {
		t.Errorf("LastReportedVolume = %v, want 250", got)
	}
}
