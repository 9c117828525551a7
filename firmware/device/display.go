//go:build tinygo

package device

import (
	"errors"
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const lineHeight = 12

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// OLED adapts the SSD1306 driver to the line-oriented display the winding
// core renders to.
type OLED struct {
	dev ssd1306.Device
}

// NewOLED configures the I2C bus and the SSD1306 behind it.
func NewOLED(bus *machine.I2C, cfg DisplayConfig) (*OLED, error) {
	err := bus.Configure(machine.I2CConfig{SDA: cfg.SDA, SCL: cfg.SCL})
	if err != nil {
		return nil, errors.New("error configuring I2C: " + err.Error())
	}

	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Address: cfg.Address,
		Width:   cfg.Width,
		Height:  cfg.Height,
	})
	dev.ClearDisplay()

	return &OLED{dev: dev}, nil
}

func (o *OLED) Clear() {
	o.dev.ClearBuffer()
}

func (o *OLED) Line(n int, text string) {
	y := int16(n*lineHeight) + lineHeight - 2
	tinyfont.WriteLine(&o.dev, &proggy.TinySZ8pt7b, 0, y, text, white)
}

func (o *OLED) Show() {
	err := o.dev.Display()
	if err != nil {
		println("error flushing display:", err.Error())
	}
}
