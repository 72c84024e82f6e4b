package main

import "fireworks/internal/viz"

func main() {
	viz.RunDesktop()
}
