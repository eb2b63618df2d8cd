package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"iris-go/iris"
	"iris-go/session"
	"iris-go/web"
)

func main() {
	sessionPath := flag.String("session", "session.yaml", "Session file (version + calibration samples)")
	inPath := flag.String("in", "", "Measurement CSV (label,voltage). Empty to skip batch conversion")
	outPath := flag.String("out", "", "Output CSV path (default stdout)")
	httpPort := flag.Int("http", 0, "HTTP/WebSocket port for live conversion (e.g. 8080). 0 to disable.")
	distDir := flag.String("dist", "", "Static frontend directory served at /")
	flag.Parse()

	cfg, err := session.LoadConfig(*sessionPath)
	if err != nil {
		log.Fatalf("load session: %v", err)
	}
	sess, rep, err := cfg.Build(iris.DefaultConstants())
	if err != nil {
		log.Fatalf("session %s: %v", *sessionPath, err)
	}
	log.Printf("Session %q: %s, polynomial %v", cfg.Name, sess.Version(), sess.Polynomial())
	if rep.Samples > 0 {
		log.Printf("Calibration fit: samples=%d rank=%d cond=%.3g rss=%.6g", rep.Samples, rep.Rank, rep.Cond, rep.RSS)
	}

	if *inPath != "" {
		if err := convert(sess, *inPath, *outPath); err != nil {
			log.Fatalf("convert: %v", err)
		}
	}

	if *httpPort > 0 {
		srv := web.NewServer(cfg.Name, sess, rep)
		if err := srv.Start(*httpPort, *distDir); err != nil {
			log.Fatal(err)
		}
	}
}

func convert(sess *iris.Session, inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	ms, err := session.ReadMeasurements(in)
	if err != nil {
		return err
	}
	rs, err := sess.ProcessAll(session.Voltages(ms))
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := session.WriteResults(w, ms, rs); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	log.Printf("Converted %d measurements", len(rs))
	return nil
}
