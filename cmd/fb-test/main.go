// Command fb-test paints a moving test pattern through the fbdev backend.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	minui "github.com/zhuowei/Team-Win-Recovery-Project"
	"github.com/zhuowei/Team-Win-Recovery-Project/draw"
	"github.com/zhuowei/Team-Win-Recovery-Project/fbdev"
)

func main() {
	devFlag := flag.String("dev", fbdev.DefaultDevice, "framebuffer device node")
	force565Flag := flag.Bool("force-565", false, "force the 16-bit 5/6/5 pixel format")
	swapFlag := flag.Bool("swap-rb", false, "swap red and blue channels while flipping")
	noBlankFlag := flag.Bool("no-blank", false, "never use the blank ioctl")
	brightnessFlag := flag.String("brightness", "", "sysfs brightness attribute used for blanking")
	maxBrightnessFlag := flag.Int("max-brightness", 255, "maximum brightness value")
	blPinFlag := flag.String("bl", "", "backlight GPIO pin used for blanking")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	config := &minui.Config{
		Device:         *devFlag,
		ForceRGB565:    *force565Flag,
		SwapRedBlue:    *swapFlag,
		NoScreenBlank:  *noBlankFlag,
		BrightnessPath: *brightnessFlag,
		MaxBrightness:  *maxBrightnessFlag,
	}
	if *blPinFlag != "" {
		config.Backlight = gpioreg.ByName(*blPinFlag)
	}

	backend := fbdev.Open(config)
	surface, err := backend.Init()
	if err != nil {
		fatal(err)
	}
	defer backend.Close()

	img, err := surface.Image()
	if err != nil {
		fatal(err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	fmt.Printf("painting %dx%d %s frames to %s\n", surface.Width, surface.Height, surface.Format, *devFlag)
	fmt.Println("hit control-c to stop...")

	label := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		Face: basicfont.Face7x13,
	}

	var (
		offset int
		ticker = time.NewTicker(50 * time.Millisecond)
		r      = img.Bounds()
	)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			fmt.Println("blanking and closing")
			_ = backend.Blank(true)
			return
		case <-ticker.C:
		}

		// Moving gradient.
		for y := 1; y < r.Max.Y-1; y++ {
			for x := 1; x < r.Max.X-1; x++ {
				img.Set(x, y, color.RGBA{
					R: uint8(x + offset),
					G: uint8(y + offset),
					B: uint8(offset),
					A: 0xff,
				})
			}
		}

		// Box around the edge.
		draw.Rectangle(img, r, color.White)

		label.Dot = fixed.P(8, 16)
		label.DrawString(fmt.Sprintf("fb-test frame %d", offset))

		if _, err = backend.Flip(); err != nil {
			fatal(err)
		}
		offset++
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
