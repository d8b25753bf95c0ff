package main

import (
	"golang.org/x/image/font"

	"github.com/younwookim/playertest/internal/application/game"
	"github.com/younwookim/playertest/internal/application/scene"
	"github.com/younwookim/playertest/internal/application/scene/intro"
	"github.com/younwookim/playertest/internal/application/scene/menu"
	"github.com/younwookim/playertest/internal/application/scene/options"
	"github.com/younwookim/playertest/internal/application/scene/pause"
	"github.com/younwookim/playertest/internal/application/scene/playing"
)

// sceneFactory returns the constructors for every screen. uiFace is the
// label face for the widget based options screen.
func sceneFactory(uiFace font.Face) game.Factory {
	return game.Factory{
		Intro:   func(d scene.Deps) scene.Scene { return intro.New(d) },
		Menu:    func(d scene.Deps) scene.Scene { return menu.New(d) },
		Playing: func(d scene.Deps) scene.Scene { return playing.New(d) },
		Pause:   func(d scene.Deps) scene.Scene { return pause.New(d) },
		Options: func(d scene.Deps) scene.Scene { return options.New(d, uiFace) },
	}
}
