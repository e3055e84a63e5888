package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// adHocProperties builds catalog entries from command line paths, so a
// directory or archive of photos can be browsed without a catalog file.
func adHocProperties(paths []string) []Property {
	var properties []Property
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			log.Printf("Warning: skipping %s: %v", path, err)
			continue
		}

		p := Property{Title: filepath.Base(path)}
		switch {
		case info.IsDir():
			p.PhotoDir = path
		case isArchiveExt(path):
			p.PhotoBundle = path
		default:
			log.Printf("Warning: skipping %s: not a directory or photo bundle", path)
			continue
		}
		properties = append(properties, p)
	}
	return properties
}

// logBindingDiagnostics dumps the resolved configuration to the debug
// log: the photo ordering in effect and every action with its key and
// mouse bindings.
func logBindingDiagnostics(km *KeybindingManager, mm *MousebindingManager, sortMethod int) {
	if !debugEnabled {
		return
	}
	debugLog("photo sort: %s", getPhotoSortName(sortMethod))

	descriptions := GetActionDescriptions()
	keybindings := km.GetKeybindings()
	mousebindings := mm.GetMousebindings()
	for _, def := range actionDefinitions {
		debugLog("action %s: keys=%v mouse=%v (%s)",
			def.Name, keybindings[def.Name], mousebindings[def.Name], descriptions[def.Name])
	}
}

func main() {
	catalogPath := flag.String("catalog", "properties.json", "path to the property catalog JSON")
	debugMode := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	debugEnabled = *debugMode

	configResult := loadConfig()
	config := configResult.Config
	for _, warning := range configResult.Warnings {
		log.Printf("Warning: %s", warning)
	}

	var properties []Property
	if args := flag.Args(); len(args) > 0 {
		properties = adHocProperties(args)
	} else {
		var err error
		properties, err = LoadCatalog(*catalogPath)
		if err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	if err := InitGraphics(); err != nil {
		log.Fatalf("Error: failed to initialize graphics: %v", err)
	}

	manager := NewImageManager(config.CacheSize, config.PreloadEnabled)
	defer manager.StopPreload()

	announcer := NewLiveRegion()
	gallery := NewGallery(manager, announcer)
	renderer := NewRenderer(gallery, manager, config.FontSize)

	km := NewKeybindingManager(config.Keybindings)
	mm := NewMousebindingManager(config.Mousebindings, config.Mouse)
	input := NewGalleryInputHandler(km, mm, gallery, gallery, gallery)
	logBindingDiagnostics(km, mm, config.PhotoSort)

	app := NewApp(properties, gallery, renderer, input, manager, configResult)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("casaview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if config.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
