package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lixenwraith/jumpman/input"
)

// Version is the replay format written by Encode
const Version = 1

// Sentinel errors
var (
	ErrBadVersion = errors.New("invalid replay version")
	ErrBadFrame   = errors.New("replay parse error")
	ErrNoFrames   = errors.New("replay has no input frames")
)

// Replay is a recorded input stream, one entry per fixed step
type Replay struct {
	Version int
	Level   string
	Inputs  []input.StepInput
}

type header struct {
	Version int    `json:"version"`
	Level   string `json:"level"`
}

// frame is the on-disk form of one step; flags are 0/1 and all are required
type frame struct {
	Left    *int `json:"l"`
	Right   *int `json:"r"`
	JumpP   *int `json:"jp"`
	JumpR   *int `json:"jr"`
	Start   *int `json:"start"`
	Restart *int `json:"restart"`
	Quit    *int `json:"quit"`
}

func bit(b bool) *int {
	v := 0
	if b {
		v = 1
	}
	return &v
}

func toFrame(in input.StepInput) frame {
	return frame{
		Left:    bit(in.Left),
		Right:   bit(in.Right),
		JumpP:   bit(in.JumpPressed),
		JumpR:   bit(in.JumpReleased),
		Start:   bit(in.StartPressed),
		Restart: bit(in.RestartPressed),
		Quit:    bit(in.QuitPressed),
	}
}

func (f frame) toInput() (input.StepInput, bool) {
	fields := []*int{f.Left, f.Right, f.JumpP, f.JumpR, f.Start, f.Restart, f.Quit}
	for _, v := range fields {
		if v == nil {
			return input.StepInput{}, false
		}
	}
	return input.StepInput{
		Left:           *f.Left != 0,
		Right:          *f.Right != 0,
		JumpPressed:    *f.JumpP != 0,
		JumpReleased:   *f.JumpR != 0,
		StartPressed:   *f.Start != 0,
		RestartPressed: *f.Restart != 0,
		QuitPressed:    *f.Quit != 0,
	}, true
}

// Encode writes r as JSONL: a header line then one line per step
func Encode(w io.Writer, r Replay) error {
	version := r.Version
	if version == 0 {
		version = Version
	}

	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	if err := enc.Encode(header{Version: version, Level: r.Level}); err != nil {
		return fmt.Errorf("write replay header: %w", err)
	}
	for i, in := range r.Inputs {
		if err := enc.Encode(toFrame(in)); err != nil {
			return fmt.Errorf("write replay frame %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// Decode reads a JSONL replay
// Blank lines and lines starting with '#' are skipped. A line carrying both "version" and
// "level" before the first frame is the header; every other line must be a complete frame
func Decode(rd io.Reader) (Replay, error) {
	r := Replay{Version: Version}
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var keys map[string]json.RawMessage
		if err := json.Unmarshal([]byte(line), &keys); err != nil {
			return r, fmt.Errorf("%w on line %d: %v", ErrBadFrame, lineNo, err)
		}

		_, hasVersion := keys["version"]
		_, hasLevel := keys["level"]
		if len(r.Inputs) == 0 && hasVersion && hasLevel {
			var h header
			if err := json.Unmarshal([]byte(line), &h); err != nil {
				return r, fmt.Errorf("%w on line %d: %v", ErrBadFrame, lineNo, err)
			}
			if h.Version <= 0 || h.Version > 0xffff {
				return r, fmt.Errorf("%w %d on line %d", ErrBadVersion, h.Version, lineNo)
			}
			r.Version, r.Level = h.Version, h.Level
			continue
		}

		var f frame
		if err := json.Unmarshal([]byte(line), &f); err != nil {
			return r, fmt.Errorf("%w on line %d: %v", ErrBadFrame, lineNo, err)
		}
		in, ok := f.toInput()
		if !ok {
			return r, fmt.Errorf("%w on line %d: missing field", ErrBadFrame, lineNo)
		}
		r.Inputs = append(r.Inputs, in)
	}
	if err := scanner.Err(); err != nil {
		return r, fmt.Errorf("read replay: %w", err)
	}

	if len(r.Inputs) == 0 {
		return r, ErrNoFrames
	}
	return r, nil
}
