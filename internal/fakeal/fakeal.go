//go:build darwin || (linux && (amd64 || arm64))

// Package fakeal is an in-process OpenAL implementation for tests. Every entry point is a
// purego callback, so the real bindings run against it without a native library.
//
// Only one Library is active at a time; New replaces the previous one. Tests using it
// must not run in parallel.
package fakeal

import (
	"strings"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/rotisserie/eris"

	"github.com/ngld/knossos/packages/libopenal/pkg/dynlib"
)

// Values the fake understands. They match al.h and alc.h.
const (
	alBuffer             = 0x1009
	alSourceState        = 0x1010
	alInitial            = 0x1011
	alPlaying            = 0x1012
	alPaused             = 0x1013
	alStopped            = 0x1014
	alBuffersQueued      = 0x1015
	alBuffersProcessed   = 0x1016
	alFrequency          = 0x2001
	alBits               = 0x2002
	alChannels           = 0x2003
	alSize               = 0x2004
	alInvalidName        = 0xA001
	alInvalidEnum        = 0xA002
	alInvalidValue       = 0xA003
	alInvalidOperation   = 0xA004
	alVendor             = 0xB001
	alVersion            = 0xB002
	alRenderer           = 0xB003
	alExtensions         = 0xB004
	alDistanceModelParam = 0xD000
	alOrientation        = 0x100F

	alcInvalidDevice           = 0xA001
	alcInvalidContext          = 0xA002
	alcInvalidEnum             = 0xA003
	alcMajorVersion            = 0x1000
	alcMinorVersion            = 0x1001
	alcDefaultDeviceSpecifier  = 0x1004
	alcDeviceSpecifier         = 0x1005
	alcExtensions              = 0x1006
	alcCaptureDeviceSpecifier  = 0x310
	alcCaptureDefaultSpecifier = 0x311
	alcCaptureSamples          = 0x312
	alcDefaultAllDevices       = 0x1012
	alcAllDevicesSpecifier     = 0x1013
)

// BufferState is the content of a fake buffer.
type BufferState struct {
	Format    int32
	Frequency int32
	Data      []byte
}

// SourceState is the state of a fake source.
type SourceState struct {
	State     int32
	Queue     []uint32
	Processed int
	Ints      map[int32]int32
	Floats    map[int32][]float32
}

type eaxKey struct {
	set      uint32
	property uint32
	source   uint32
}

// Library is a fake OpenAL implementation. The exported fields are read on every call, so
// a test may change them between calls but not while another goroutine uses the fake.
// The accessor methods synchronize with the entry points.
type Library struct {
	// Devices is returned by the basic enumeration, AllDevices by ALC_ENUMERATE_ALL_EXT.
	Devices          []string
	AllDevices       []string
	Captures         []string
	DefaultDevice    string
	DefaultAllDevice string
	DefaultCapture   string

	ALCExtensions []string
	ALExtensions  []string
	// Enums answers alGetEnumValue and alcGetEnumValue.
	Enums map[string]int32

	Vendor   string
	Version  string
	Renderer string

	lock    sync.Mutex
	missing map[string]bool
	closed  bool

	// results handed out by the string getters stay reachable until the library is replaced
	strs map[string][]byte

	alErr  int32
	alcErr int32

	devices    map[uintptr]string
	captures   map[uintptr]string
	contexts   map[uintptr]uintptr
	attrs      map[uintptr][]int32
	current    uintptr
	threadCtx  uintptr
	nextHandle uintptr

	nextID   uint32
	buffers  map[uint32]*BufferState
	sources  map[uint32]*SourceState
	listener map[int32][]float32
	enabled  map[int32]bool
	ints     map[int32]int32

	eax map[eaxKey][]byte
}

var active atomic.Pointer[Library]

// New returns a fake that looks like a current OpenAL Soft build and makes it the active
// implementation.
func New() *Library {
	l := &Library{
		Devices:          []string{"OpenAL Soft"},
		AllDevices:       []string{"front", "rear"},
		Captures:         []string{"mic"},
		DefaultDevice:    "OpenAL Soft",
		DefaultAllDevice: "front",
		DefaultCapture:   "mic",
		ALCExtensions:    []string{"ALC_ENUMERATE_ALL_EXT", "ALC_ENUMERATION_EXT", "ALC_EXT_CAPTURE"},
		Enums:            map[string]int32{},
		Vendor:           "OpenAL Community",
		Version:          "1.1 ALSOFT 1.23.1",
		Renderer:         "OpenAL Soft",

		missing:    map[string]bool{},
		strs:       map[string][]byte{},
		devices:    map[uintptr]string{},
		captures:   map[uintptr]string{},
		contexts:   map[uintptr]uintptr{},
		attrs:      map[uintptr][]int32{},
		nextHandle: 0x1000,
		buffers:    map[uint32]*BufferState{},
		sources:    map[uint32]*SourceState{},
		listener:   map[int32][]float32{},
		enabled:    map[int32]bool{},
		ints:       map[int32]int32{alDistanceModelParam: 0xD002},
		eax:        map[eaxKey][]byte{},
	}

	active.Store(l)
	return l
}

func (l *Library) Name() string {
	return "fakeal"
}

// Lookup resolves the core entry points. Extension functions are only reachable through
// alcGetProcAddress and alGetProcAddress.
func (l *Library) Lookup(symbol string) (uintptr, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	if l.closed {
		return 0, eris.Errorf("fakeal: library is closed")
	}

	addr, ok := coreSymbols()[symbol]
	if !ok || l.missing[symbol] {
		return 0, eris.Wrapf(dynlib.ErrSymbolNotFound, "fakeal: %s", symbol)
	}

	return addr, nil
}

func (l *Library) Close() error {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.closed = true
	return nil
}

// Omit removes symbol from the exported entry points.
func (l *Library) Omit(symbol string) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.missing[symbol] = true
}

func (l *Library) Closed() bool {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.closed
}

// SetALError makes the next alGetError call return code.
func (l *Library) SetALError(code int32) {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.alErr = code
}

// Buffer returns a copy of the buffer's state or nil if it doesn't exist.
func (l *Library) Buffer(id uint32) *BufferState {
	l.lock.Lock()
	defer l.lock.Unlock()

	buf, ok := l.buffers[id]
	if !ok {
		return nil
	}

	cp := *buf
	return &cp
}

func (l *Library) BufferCount() int {
	l.lock.Lock()
	defer l.lock.Unlock()

	return len(l.buffers)
}

// Source returns a copy of the source's state or nil if it doesn't exist.
func (l *Library) Source(id uint32) *SourceState {
	l.lock.Lock()
	defer l.lock.Unlock()

	src, ok := l.sources[id]
	if !ok {
		return nil
	}

	cp := *src
	cp.Queue = append([]uint32(nil), src.Queue...)
	return &cp
}

func (l *Library) SourceCount() int {
	l.lock.Lock()
	defer l.lock.Unlock()

	return len(l.sources)
}

// Process marks up to n more queued buffers of source as played. A source that runs out
// of buffers stops, like a real one would.
func (l *Library) Process(source uint32, n int) {
	l.lock.Lock()
	defer l.lock.Unlock()

	src, ok := l.sources[source]
	if !ok {
		return
	}

	src.Processed += n
	if src.Processed >= len(src.Queue) {
		src.Processed = len(src.Queue)
		if src.State == alPlaying {
			src.State = alStopped
		}
	}
}

// ContextAttrs returns the attribute list ctx was created with, without the terminator.
func (l *Library) ContextAttrs(ctx uintptr) []int32 {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.attrs[ctx]
}

func (l *Library) CurrentContext() uintptr {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.current
}

func (l *Library) ThreadContext() uintptr {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.threadCtx
}

// EAXProperty returns the raw value last stored for property in the property set
// identified by the first field of its GUID.
func (l *Library) EAXProperty(set, property, source uint32) []byte {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.eax[eaxKey{set, property, source}]
}

// newHandle returns a device or context handle. Handles are never reused.
func (l *Library) newHandle() uintptr {
	l.nextHandle++
	return l.nextHandle
}

func locked() *Library {
	l := active.Load()
	if l == nil {
		panic("fakeal: no active library")
	}

	l.lock.Lock()
	return l
}

func hasExtension(list []string, name string) bool {
	for _, ext := range list {
		if strings.EqualFold(ext, name) {
			return true
		}
	}
	return false
}

// cstr returns a stable pointer to value followed by a NUL.
func (l *Library) cstr(value string) unsafe.Pointer {
	key := "s:" + value
	buf, ok := l.strs[key]
	if !ok {
		buf = append([]byte(value), 0)
		l.strs[key] = buf
	}
	return unsafe.Pointer(&buf[0])
}

// cstrList returns a stable pointer to a string list and the offsets of its elements.
func (l *Library) cstrList(values []string) (unsafe.Pointer, []int) {
	key := "l:" + strings.Join(values, "\x00")
	offsets := make([]int, len(values))
	pos := 0
	for idx, value := range values {
		offsets[idx] = pos
		pos += len(value) + 1
	}

	buf, ok := l.strs[key]
	if !ok {
		for _, value := range values {
			buf = append(buf, value...)
			buf = append(buf, 0)
		}
		buf = append(buf, 0)
		l.strs[key] = buf
	}
	return unsafe.Pointer(&buf[0]), offsets
}

func goString(ptr unsafe.Pointer) string {
	if ptr == nil {
		return ""
	}

	length := 0
	for *(*byte)(unsafe.Add(ptr, length)) != 0 {
		length++
	}
	return string(unsafe.Slice((*byte)(ptr), length))
}

func setALError(l *Library, code int32) {
	// like OpenAL, keep the first error until it's read
	if l.alErr == 0 {
		l.alErr = code
	}
}

func setALCError(l *Library, code int32) {
	if l.alcErr == 0 {
		l.alcErr = code
	}
}
