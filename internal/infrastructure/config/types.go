package config

// GameConfig is the root config for game.json
type GameConfig struct {
	Display DisplayConfig `json:"display"`
	Assets  AssetsConfig  `json:"assets"`
	Input   InputConfig   `json:"input"`
	Player  PlayerConfig  `json:"player"`
	Menu    MenuConfig    `json:"menu"`
	Save    SaveConfig    `json:"save"`
	Debug   bool          `json:"debug"`
}

type DisplayConfig struct {
	Title     string `json:"title"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Framerate int    `json:"framerate"`
	Resizable bool   `json:"resizable"`
}

// AssetsConfig locates textures and the font relative to Root.
type AssetsConfig struct {
	Root       string  `json:"root"`
	TextureDir string  `json:"textureDir"`
	Font       string  `json:"font"`
	FontSize   float64 `json:"fontSize"`
	// Placeholders synthesises built-in textures for files that are missing
	Placeholders bool `json:"placeholders"`
}

// InputConfig controls synthetic key repeat, in ticks.
type InputConfig struct {
	RepeatDelay    int `json:"repeatDelay"`
	RepeatInterval int `json:"repeatInterval"`
}

type PlayerConfig struct {
	Velocity int    `json:"velocity"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Texture  string `json:"texture"`
}

type MenuConfig struct {
	ButtonWidth  int    `json:"buttonWidth"`
	ButtonHeight int    `json:"buttonHeight"`
	Spacing      int    `json:"spacing"`
	Texture      string `json:"texture"`
}

// SaveConfig enables the session store. An empty Path disables saving.
type SaveConfig struct {
	Path    string `json:"path"`
	Restore bool   `json:"restore"`
}
