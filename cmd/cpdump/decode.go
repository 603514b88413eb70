package main

import (
	"runtime"
	"sync"

	"github.com/dhamidi/classpool/classfile"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("classpool.cpdump")

// source is one class file to decode. load is called from a worker.
type source struct {
	name string
	load func() ([]byte, error)
}

type result struct {
	name string
	cf   *classfile.ClassFile
	err  error
}

// decodeAll decodes every source using up to jobs workers and returns the
// results in the order of sources.
func decodeAll(sources []source, jobs int) []result {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	jobs = min(jobs, max(len(sources), 1))
	log.Infof("decoding %d class files with %d workers", len(sources), jobs)

	results := make([]result, len(sources))
	next := make(chan int)
	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				results[i] = decodeSource(sources[i])
			}
		}()
	}
	for i := range sources {
		next <- i
	}
	close(next)
	wg.Wait()

	return results
}

func decodeSource(src source) result {
	data, err := src.load()
	if err != nil {
		return result{name: src.name, err: err}
	}
	cf, err := classfile.Decode(src.name, data)
	if err != nil {
		log.Debugf("%s: %v", src.name, err)
		return result{name: src.name, err: err}
	}
	return result{name: src.name, cf: cf}
}
