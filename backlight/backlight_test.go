package backlight

import (
	"os"
	"path/filepath"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestSysfs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brightness")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	ctl := Sysfs{Path: path, Max: 255}

	testCases := []struct {
		name string
		call func() error
		want string
	}{
		{"off", ctl.Off, "000"},
		{"on", ctl.On, "127"},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			if err := test.call(); err != nil {
				it.Fatal(err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				it.Fatal(err)
			}
			if v := string(data); v != test.want {
				it.Errorf("expected %q written, got %q", test.want, v)
			}
		})
	}
}

func TestSysfsMissing(t *testing.T) {
	ctl := Sysfs{Path: filepath.Join(t.TempDir(), "nope"), Max: 255}
	if err := ctl.Off(); err == nil {
		t.Error("expected an error for a missing brightness attribute")
	}
}

func TestPin(t *testing.T) {
	pin := &gpiotest.Pin{N: "BL"}
	ctl := Pin{Out: pin}

	if err := ctl.Off(); err != nil {
		t.Fatal(err)
	}
	if pin.L != gpio.Low {
		t.Error("expected pin to be driven low")
	}

	if err := ctl.On(); err != nil {
		t.Fatal(err)
	}
	if pin.L != gpio.High {
		t.Error("expected pin to be driven high")
	}
}
