package main

import (
	"canvaschess/ui"
	"fmt"
)

func main() {
	if err := ui.RunCanvasChess(); err != nil {
		fmt.Println(err)
	}
}
