package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/qnkhuat/diceterm/pkg"
	"golang.org/x/term"
)

var (
	done = make(chan bool)
)

func main() {
	logPath := flag.String("log", "./log", "path to log file")
	serverAddr := flag.String("server", pkg.ServerPort, "leaderboard server address")
	offline := flag.Bool("offline", false, "play without the leaderboard")
	flag.Parse()
	pkg.InitLog(*logPath, "CLIENT: ")

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "diceterm needs an interactive terminal")
		os.Exit(1)
	}

	log.Println("New Client")
	cl := pkg.NewClient()
	if *offline {
		cl.SetOffline()
	} else {
		cl.Connect(*serverAddr)
	}

	go func() {
		if err := cl.App.Run(); err != nil {
			log.Printf("App stopped: %v", err)
		}
		done <- true
	}()

	// Down when receiving a kill signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc
		done <- true
	}()

	<-done
	cl.Disconnect()
}
