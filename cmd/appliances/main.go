package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Asutorufa/seqlist/internal/appliance"
	"github.com/Asutorufa/seqlist/internal/config"
	"github.com/Asutorufa/seqlist/pkg/collection"
	"github.com/Asutorufa/seqlist/pkg/log"
)

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "seqlist", "config.json")
}

func main() {
	path := flag.String("config", defaultConfigPath(), "config file path, created with defaults when missing")
	flag.Parse()

	if err := run(*path, os.Stdout); err != nil {
		log.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func run(path string, w io.Writer) error {
	c, err := config.Load(path)
	if err != nil {
		return err
	}

	if c.Log.Save {
		if err := os.MkdirAll(filepath.Dir(c.LogPath), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}

	ctr := log.NewController()
	ctr.Set(c.Log, c.LogPath)
	defer ctr.Close()

	appliances := c.Appliances
	log.Debug("appliances loaded", "path", path, "count", appliances.Len())

	fmt.Fprintln(w, "Appliances:")
	printList(w, appliances)

	second, err := appliances.Get(1)
	if err != nil {
		return fmt.Errorf("get second appliance: %w", err)
	}
	fmt.Fprintln(w, "\nSecond appliance:", second)

	oven := appliance.New("Oven", 1500, 1.5)
	old, err := appliances.Set(1, oven)
	if err != nil {
		return fmt.Errorf("replace second appliance: %w", err)
	}
	log.Info("appliance replaced", "old", old.Name, "new", oven.Name)
	fmt.Fprintln(w, "\nAfter replacement:")
	printList(w, appliances)

	if !appliances.Remove(oven) {
		log.Warn("appliance not found", "name", oven.Name)
	}
	fmt.Fprintln(w, "\nAfter removal:")
	printList(w, appliances)

	appliances.Clear()
	fmt.Fprintln(w, "\nAfter clearing, number of appliances:", appliances.Len())

	return nil
}

func printList(w io.Writer, l *collection.List[appliance.Appliance]) {
	for it := l.Iterator(); it.HasNext(); {
		a, err := it.Next()
		if err != nil {
			log.Error("iterate appliances failed", "err", err)
			return
		}
		fmt.Fprintln(w, a)
	}
}
