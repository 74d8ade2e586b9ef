package rbtree

import "fmt"

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Defaultsettings for rbtree maps.
//
// "validate.enable" (bool, default: false)
//		Run Validate() after every mutation. Walks the full tree,
//		meant for debugging and stress tests only.
//
// "memcapacity" (int64, default: free system RAM)
//		Advisory upper bound on memory consumed by live entries.
//		Logged at construction and surfaced through Stats().
//
// "default.value" (of the map's value type, default: zero value)
//		Value handed back by Get() and Delete() when key is absent.
//
// "default.producer" (func() of the map's value type, default: nil)
//		Zero-argument producer invoked per miss, for defaults that
//		must not be shared across callers, like a fresh slice.
//		Mutually exclusive with "default.value".
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	setts := s.Settings{
		"validate.enable": false,
		"memcapacity":     int64(free),
	}
	return setts
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}

// pick the default value or the default producer out of setts, never
// both.
func defaults[V any](setts s.Settings, logprefix string) (defvalue V, producer func() V) {
	value, okval := setts["default.value"]
	prod, okprod := setts["default.producer"]
	if okval && okprod {
		fmsg := "%v configured default.value and default.producer, call the programmer"
		panic(fmt.Errorf(fmsg, logprefix))
	}
	if okval {
		defvalue = value.(V)
	}
	if okprod {
		producer = prod.(func() V)
	}
	return
}
