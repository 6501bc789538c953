package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"github.com/volschin/hmcfgusb"
	"gopkg.in/natefinch/lumberjack.v2"
)

const appVersion = "0.9.0"

// openLogFile additionally writes the log to a rotated file. The file is
// also closed when the program ends through log.Fatal.
func openLogFile(name string) io.Closer {
	rotated := &lumberjack.Logger{
		Filename:   name,
		MaxSize:    10,
		MaxBackups: 3,
	}
	log.RegisterExitHandler(func() { rotated.Close() })
	log.SetOutput(io.MultiWriter(os.Stderr, rotated))
	return rotated
}

func usage() {
	fmt.Fprintf(os.Stderr, "Syntax: %s [options] hmusbif.enc\n\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	version := flag.Bool("version", false, "Prints the program version.")
	verbose := flag.Bool("v", false, "Enable verbose logging.")
	chip := flag.String("chip", "", "Chip type (328p or 644p), required for hex files.")
	logFile := flag.String("logfile", "", "Also write the log to this file.")
	export := flag.String("export", "", "Write the parsed image as Intel HEX to this file instead of flashing.")
	cfgFile := flag.String("config", "", "Configuration yaml file. Example:\n\n"+exampleConfig())
	command := flag.String("cmd", "", fmt.Sprintf("Command to run instead of flashing, one of: %+v", commandNames()))
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Println(appVersion)
		return
	}

	fmt.Printf("HM-CFG-USB flasher version %v\n\n", appVersion)

	if *command == "" && flag.NArg() != 1 {
		if flag.NArg() == 0 {
			fmt.Fprintf(os.Stderr, "Missing firmware filename!\n\n")
		}
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		log.Fatal(err)
	}
	if *chip != "" {
		cfg.Chip = *chip
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if cfg.LogFile != "" {
		defer openLogFile(cfg.LogFile).Close()
	}

	hmcfgusb.SetLogger(log.StandardLogger())

	if *command != "" {
		f, ok := commands[*command]
		if !ok {
			log.Fatalf("invalid command %v", *command)
		}
		f(hmcfgusb.USBConnector{})
		return
	}

	profile, err := cfg.chipProfile()
	if err != nil {
		log.Fatal(err)
	}

	img, err := hmcfgusb.LoadFirmwareFile(flag.Arg(0), profile)
	if err != nil {
		log.Fatal(err)
	}

	if *export != "" {
		if err := exportImage(img, *export); err != nil {
			log.Fatal(err)
		}
		log.Infof("image written to %v", *export)
		return
	}

	opts := cfg.programmerOptions()
	var bar *progressbar.ProgressBar
	if !*verbose {
		bar = progressbar.NewOptions(img.Len(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Flashing"),
			progressbar.OptionShowCount(),
		)
		opts = append(opts, hmcfgusb.WithProgressCallback(func(p hmcfgusb.Progress) {
			bar.Set(p.Block)
		}))
	}

	prog := hmcfgusb.NewProgrammer(hmcfgusb.USBConnector{}, opts...)
	if err := prog.Flash(img); err != nil {
		if bar != nil {
			fmt.Fprintln(os.Stderr)
		}
		log.Fatal(err)
	}
	if bar != nil {
		bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	log.Infof("complete")
}

func exportImage(img *hmcfgusb.Image, fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	if err := img.WriteIntelHex(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
