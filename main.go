package main

import (
	"flag"
	"fmt"
	_ "image/png"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"

	"github.com/nightfallplayers/marquee/marquee"
)

const configFile = "./marquee.yml"
const localDataFile = "./localdata.yml"

func run() {
	config := marquee.ReadConfig(configFile)

	local := marquee.ReadLocalData(localDataFile)
	local.Visits++
	local.LastVisit = time.Now()
	local.WriteToFile(localDataFile)

	width := config.ScreenWidth
	height := config.ScreenHeight
	if width > 1920 {
		width = 1920
	}
	if height > 1080 {
		height = 1080
	}
	cfg := pixelgl.WindowConfig{
		Title:  "Twelfth Night | The Nightfall Players",
		Bounds: pixel.R(0, 0, width, height),
		VSync:  true,
	}
	if config.Fullscreen {
		cfg.Monitor = pixelgl.PrimaryMonitor()
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	marquee.InitAudio()
	if config.Music {
		marquee.PlaySong("overture")
	}

	draw := marquee.NewDrawContext(cfg)
	app := marquee.NewApp(config, local)
	uiContext := marquee.NewUi()

	fmt.Printf("[Boot] visit %d\n", local.Visits)

	for !win.Closed() {
		marquee.UpdateApp(win, app, uiContext)
		marquee.DrawApp(win, app, draw)

		win.Update()
	}
}

// To read about how to use these profiles,
// https://blog.golang.org/pprof
var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	pixelgl.Run(run)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
