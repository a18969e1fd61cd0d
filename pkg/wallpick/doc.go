// Package wallpick picks and applies a desktop wallpaper for the primary
// display's aspect ratio and the OS light/dark theme.
//
// It can be used as the wallpick CLI or embedded in other Go programs.
//
// # Basic Usage
//
//	w, err := wallpick.New(wallpick.Config{
//	    WallpaperDir: `C:\Wallpapers`,
//	    Style:        "Fill",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report := w.Run(context.Background())
//	fmt.Println(report.State, report.Path)
//
// The directory is expected to hold files named wallpaper_{label}.png and,
// optionally, wallpaper_{label}_Dark.png, where label is one of 16_10, 16_9,
// 21_9, 32_9 or Default.
//
// # Dependency Injection
//
// Every OS facility can be replaced, which is how the tests run without a
// desktop session:
//
//	w, err := wallpick.New(cfg,
//	    wallpick.WithDisplay(display),
//	    wallpick.WithTheme(theme),
//	    wallpick.WithDesktop(desktop),
//	    wallpick.WithJournal(journal),
//	)
package wallpick
