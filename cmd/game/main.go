// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/galcock/Ractr/internal/audio"
	"github.com/galcock/Ractr/internal/config"
	"github.com/galcock/Ractr/internal/defs"
	"github.com/galcock/Ractr/internal/net"
	"github.com/galcock/Ractr/internal/state"
	"github.com/galcock/Ractr/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	balancePath := flag.String("balance", "assets/balance.json", "путь к файлу баланса")
	addr := flag.String("addr", "", "ws-адрес телеметрии; пусто — телеметрия выключена")
	seed := flag.Int64("seed", 0, "сид генератора случайностей; 0 — от текущего времени")
	mute := flag.Bool("mute", false, "выключить звук")
	fromMenu := flag.Bool("menu", true, "начинать с меню; false — сразу в игру")
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	balance, err := defs.LoadBalance(*balancePath)
	if err != nil {
		log.Printf("balance: %v (falling back to defaults)", err)
	}

	var updates <-chan *defs.Balance
	watcher, err := defs.NewWatcher(*balancePath)
	if err != nil {
		log.Printf("balance watch disabled: %v", err)
	} else {
		defer watcher.Close()
		updates = watcher.Updates
	}

	var notifier net.Notifier = net.NopNotifier{}
	if *addr != "" {
		client := net.NewClient(*addr)
		defer client.Close()
		notifier = client
	}

	var sound audio.Player = audio.NopPlayer{}
	if !*mute {
		player := audio.NewBeepPlayer()
		defer player.Close()
		sound = player
	}

	deps := state.Deps{
		Balance:        balance,
		Notifier:       notifier,
		Audio:          sound,
		Rng:            utils.NewPRNGService(*seed),
		BalanceUpdates: updates,
	}

	sm := state.NewStateMachine()
	if *fromMenu {
		sm.SetState(state.NewMenuState(sm, deps))
	} else {
		sm.SetState(state.NewGameState(sm, deps))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Ractr")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
