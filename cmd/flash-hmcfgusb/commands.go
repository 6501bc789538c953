package main

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/volschin/hmcfgusb"
)

// Single commands that can be run instead of flashing, selected with -cmd.
var commands = map[string]func(hmcfgusb.Connector){
	"info":       processInfo,
	"bootloader": processBootloader,
}

func commandNames() []string {
	names := []string{}
	for key := range commands {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

func processInfo(conn hmcfgusb.Connector) {
	dev, err := conn.Open()
	if err != nil {
		log.Fatalf("can't initialize HM-CFG-USB: %v", err)
	}
	defer dev.Close()

	mode := "normal"
	if dev.InBootloader() {
		mode = "bootloader"
	}
	fmt.Printf("HM-CFG-USB found, mode: %v\n", mode)
}

func processBootloader(conn hmcfgusb.Connector) {
	dev, err := conn.Open()
	if err != nil {
		log.Fatalf("can't initialize HM-CFG-USB: %v", err)
	}
	defer dev.Close()

	if dev.InBootloader() {
		log.Infof("already in bootloader mode")
		return
	}
	if err := dev.EnterBootloader(); err != nil {
		log.Fatalf("failed to enter bootloader: %v", err)
	}
	log.Infof("bootloader requested, device will reappear in bootloader mode")
}
