// Command goldengen regenerates golden stdout/exit-code fixtures for the
// testdata/*.c programs. It builds the c4 binary once, then runs it over
// every testdata/*.c program concurrently (one errgroup goroutine per file,
// with no concurrency limit), writing each program's captured stdout to a
// sibling .out file and its exit code to a sibling .exit file.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	dir := flag.String("dir", "testdata", "directory of .c fixtures to regenerate goldens for")
	timeout := flag.Duration("timeout", 30*time.Second, "overall regeneration timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	bin, cleanup, err := buildC4(ctx)
	if err != nil {
		log.Fatalf("build c4: %v", err)
	}
	defer cleanup()

	sources, err := filepath.Glob(filepath.Join(*dir, "*.c"))
	if err != nil {
		log.Fatalf("glob %s: %v", *dir, err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, src := range sources {
		src := src
		eg.Go(func() error { return regenerate(ctx, bin, src) })
	}
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}
}

func buildC4(ctx context.Context) (binPath string, cleanup func(), err error) {
	tmp, err := os.MkdirTemp("", "c4-goldengen-")
	if err != nil {
		return "", nil, err
	}
	bin := filepath.Join(tmp, "c4")
	cmd := exec.CommandContext(ctx, "go", "build", "-o", bin, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		os.RemoveAll(tmp)
		return "", nil, err
	}
	return bin, func() { os.RemoveAll(tmp) }, nil
}

func regenerate(ctx context.Context, bin, src string) error {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, src)
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	runErr := cmd.Run()
	exitCode := 0
	if ee, ok := runErr.(*exec.ExitError); ok {
		exitCode = ee.ExitCode()
	} else if runErr != nil {
		return fmt.Errorf("%s: %w", src, runErr)
	}

	base := strings.TrimSuffix(src, ".c")
	if err := os.WriteFile(base+".out", stdout.Bytes(), 0644); err != nil {
		return err
	}
	return os.WriteFile(base+".exit", []byte(strconv.Itoa(exitCode)+"\n"), 0644)
}
