// Package galaxy is a scrollable 3D project gallery for [Ebitengine].
//
// Projects are laid out as planets in a vertical "galaxy": a featured row
// at the top, then Projects and Games grids below, each under a title. A
// perspective camera scrolls through them with the mouse wheel, drags with
// inertial fling, keyboard jumps between sections, and clicks that zoom in
// and open a project. A 2D card grid is available as a lightweight
// alternative and the choice is remembered.
//
// # Quick start
//
//	cfg := galaxy.DefaultSceneConfig()
//	cfg.Items = items // e.g. from the catalog package
//	scene := galaxy.NewScene(cfg)
//	galaxy.Run(scene, galaxy.RunConfig{Title: "Galaxy", Width: 1280, Height: 800})
//
// # Building blocks
//
// The pieces can be used without a Scene:
//
//   - [ComputeLayout] and [LayoutEngine] place items deterministically from
//     their ids, so the same list always produces the same galaxy.
//   - [Advance] is the pure camera step; [Controller] wraps it with wheel,
//     drag and fling handling, programmatic navigation and throttled
//     position reports.
//   - [LoadTracker] and [GateCamera] hold the camera still until assets
//     finish loading.
//   - [Preferences] resolves and persists the view mode over any
//     [PreferenceStore]; see the prefstore package for file and SQLite
//     backends.
//
// Everything runs on the update goroutine. Timers are fired from the frame
// loop, so callbacks never race with input or drawing.
//
// # Automated runs
//
// [Scene.InjectScroll], [Scene.InjectDrag] and [Scene.InjectClick] queue
// synthetic input, and [LoadTestScript] sequences input, navigation and
// WebP screenshots from a JSON script.
//
// [Ebitengine]: https://ebitengine.org
package galaxy
