package core

// RuntimeConfig describes the terminal the front-end starts in.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}
