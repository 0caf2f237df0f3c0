package sys

import (
	"bufio"
	"errors"
	"io"
	"log"
	"os"
	"runtime"
)

const MB = 1000.0 * 1000.0

func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// OpenForSave truncates filename unless appendMode is set.
func OpenForSave(filename string, appendMode bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(filename, flags, 0644)
}

func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

func LogMemoryUsage() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	log.Printf("Memory used: %.2f MB. HeapInUse: %.2f MB.\n",
		float64(memStats.Alloc)/MB, float64(memStats.HeapInuse)/MB)
}

type BufferedWriteCloser struct {
	w     *bufio.Writer
	wc    io.WriteCloser
	count int
}

func NewBufferedWriteCloser(w io.WriteCloser) *BufferedWriteCloser {
	return &BufferedWriteCloser{
		w:  bufio.NewWriter(w),
		wc: w,
	}
}

func (bw *BufferedWriteCloser) Total() int {
	return bw.count
}

func (bw *BufferedWriteCloser) Write(p []byte) (n int, err error) {
	n, err = bw.w.Write(p)
	bw.count += n
	return n, err
}

func (bw *BufferedWriteCloser) Close() error {
	if err := bw.w.Flush(); err != nil {
		bw.wc.Close()
		return err
	}
	return bw.wc.Close()
}
