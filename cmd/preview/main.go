// Command preview plays the clips of a library yaml outside of any game, so
// clip timing can be inspected while the file is edited. With -watch the
// library reloads whenever the yaml changes.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	specPath := flag.String("clips", "", "clip library yaml")
	sheetPath := flag.String("sheet", "", "spritesheet image (defaults to the sheet named in the yaml)")
	scale := flag.Float64("scale", 4, "draw scale")
	watch := flag.Bool("watch", false, "reload the library when the yaml changes")
	flag.Parse()

	if *specPath == "" {
		log.Fatal("preview: -clips is required")
	}

	game, err := NewGame(*specPath, *sheetPath, *scale, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("frameplay preview")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
