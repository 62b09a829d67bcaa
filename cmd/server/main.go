package main

import (
	"net"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/qnkhuat/diceterm/pkg"
)

func main() {
	app := cli.NewApp()

	app.Name = "diceterm server"
	app.Version = "0.0.1"
	app.Usage = "leaderboard and ssh front door for diceterm"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "port, p",
			Value: pkg.ServerPort,
			Usage: "leaderboard listen address",
		},
		cli.StringFlag{
			Name:  "ssh-port",
			Value: pkg.SshPort,
			Usage: "ssh listen address",
		},
		cli.StringFlag{
			Name:  "client",
			Value: "./diceterm",
			Usage: "game binary spawned for ssh visitors",
		},
		cli.StringFlag{
			Name:  "host-key",
			Usage: "ssh host key `FILE` (generated when empty)",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	}

	app.Action = serve
	app.Run(os.Args)
}

func serve(c *cli.Context) error {
	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	if c.Bool("debug") {
		log.SetLevel(log.DebugLevel)
	}

	s, err := pkg.NewServer(c.String("ssh-port"), c.String("client"), c.String("host-key"))
	if err != nil {
		log.Fatalf("Failed to start ssh server: %v", err)
	}

	go s.Run()
	go s.CleanIdleBoard()

	listener, err := net.Listen("tcp", c.String("port"))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}
	defer listener.Close()

	color.Cyan("diceterm server up")
	log.WithFields(log.Fields{
		"leaderboard": c.String("port"),
		"ssh":         c.String("ssh-port"),
	}).Info("Listening")

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Errorf("Failed to accept: %v", err)
			continue
		}
		go s.HandleConn(conn)
	}
}
