// Package zstd provides utilities for connecting to external zStandard compression tasks.
package zstd

import (
	"io"
	"log"
	"os"
	"os/exec"
	"sync"

	"github.com/pkg/errors"
)

// Variables to enable mocking for testing.
var (
	osPipe      = os.Pipe
	zstdCommand = "zstd"
)

type waitingReadCloser struct {
	io.ReadCloser
	wg *sync.WaitGroup
}

// Close closes the pipe, and then waits for the zstd process to exit.
func (r waitingReadCloser) Close() error {
	err := r.ReadCloser.Close()
	r.wg.Wait()
	return err
}

// NewReader creates a reader piped to an external zstd process reading from
// filename.  Close the reader when done.
func NewReader(filename string) (io.ReadCloser, error) {
	// Fail early, in our process, if the file can't be read.
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	f.Close()

	pipeR, pipeW, err := osPipe()
	if err != nil {
		return nil, errors.Wrap(err, "zstd pipe")
	}
	cmd := exec.Command(zstdCommand, "-d", "-c", filename)
	cmd.Stdout = pipeW

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		err := cmd.Run()
		if err != nil {
			log.Println("ZSTD error", filename, err)
		}
		pipeW.Close()
		wg.Done()
	}()

	return waitingReadCloser{pipeR, &wg}, nil
}

type waitingWriteCloser struct {
	io.WriteCloser
	done <-chan error
}

// Close closes the pipe and waits for the zstd process to flush the file.  A
// failed zstd process is reported here.
func (w waitingWriteCloser) Close() error {
	if err := w.WriteCloser.Close(); err != nil {
		return err
	}
	return <-w.done
}

// NewWriter creates a writer piped to an external zstd process writing to
// filename.  Close blocks until the process has flushed the file.
func NewWriter(filename string) (io.WriteCloser, error) {
	pipeR, pipeW, err := osPipe()
	if err != nil {
		return nil, errors.Wrap(err, "zstd pipe")
	}
	f, err := os.Create(filename)
	if err != nil {
		pipeR.Close()
		pipeW.Close()
		return nil, err
	}
	cmd := exec.Command(zstdCommand, "-q", "-c")
	cmd.Stdin = pipeR
	cmd.Stdout = f

	done := make(chan error, 1)
	go func() {
		err := cmd.Run()
		if err != nil {
			log.Println("ZSTD error", filename, err)
			err = errors.Wrapf(err, "zstd %s", filename)
		}
		pipeR.Close()
		f.Close()
		done <- err
	}()

	return waitingWriteCloser{pipeW, done}, nil
}
