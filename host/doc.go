// Package host runs a motion.Driver inside an Ebitengine game loop.
//
// Run opens a window, ticks the driver once per update by TimeScale/TPS
// seconds and then calls the application's Update and Draw hooks. Config is
// usually loaded from YAML:
//
//	title: intro
//	width: 800
//	height: 600
//	timeScale: 0.5
//	showFPS: true
//	logLevel: debug
//
// DrawNode and DrawTree render motion nodes as tinted rectangles, which is
// enough to watch animations without a sprite pipeline.
package host
