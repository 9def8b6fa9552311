// footswitchctl talks the vendor SysEx configuration protocol to a connected
// foot controller over a regular MIDI port.
//
// Usage:
//
//	footswitchctl list
//	footswitchctl [-port NAME] info
//	footswitchctl [-port NAME] get -switch 0 -event press
//	footswitchctl [-port NAME] set -switch 0 -event press -actions "cc:0:64:127,note:0:60:100"
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // register MIDI driver

	"github.com/leandrodaf/footswitch/internal/sysex"
	"github.com/leandrodaf/footswitch/sdk/contracts"
)

const defaultPortPattern = "footswitch"

var header = []byte{sysex.ManufacturerID1, sysex.ManufacturerID2, sysex.DeviceID}

func main() {
	port := flag.String("port", "", "MIDI port name (substring match); defaults to the first port containing \"footswitch\"")
	timeout := flag.Duration("timeout", 2*time.Second, "how long to wait for the device reply")
	flag.Parse()
	defer midi.CloseDriver()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	var err error
	switch flag.Arg(0) {
	case "list":
		err = listPorts()
	case "info":
		err = withDevice(*port, *timeout, cmdInfo)
	case "get":
		err = withDevice(*port, *timeout, func(d *device) error {
			return cmdGet(d, flag.Args()[1:])
		})
	case "set":
		err = withDevice(*port, *timeout, func(d *device) error {
			return cmdSet(d, flag.Args()[1:])
		})
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "footswitchctl:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: footswitchctl [-port NAME] [-timeout D] list|info|get|set ...")
}

func listPorts() error {
	fmt.Println("inputs:")
	for _, in := range midi.GetInPorts() {
		fmt.Println("  ", in.String())
	}
	fmt.Println("outputs:")
	for _, out := range midi.GetOutPorts() {
		fmt.Println("  ", out.String())
	}
	return nil
}

// device is one open in/out port pair plus the reply plumbing.
type device struct {
	send    func(midi.Message) error
	stop    func()
	replies chan []byte
	timeout time.Duration
}

func withDevice(pattern string, timeout time.Duration, fn func(*device) error) error {
	if pattern == "" {
		pattern = defaultPortPattern
	}
	in, err := findIn(pattern)
	if err != nil {
		return err
	}
	out, err := findOut(pattern)
	if err != nil {
		return err
	}

	d := &device{replies: make(chan []byte, 4), timeout: timeout}
	d.send, err = midi.SendTo(out)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	d.stop, err = midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var payload []byte
		if !msg.GetSysEx(&payload) {
			return
		}
		if len(payload) < len(header)+1 || !bytes.HasPrefix(payload, header) {
			return
		}
		select {
		case d.replies <- payload:
		default:
		}
	}, midi.UseSysEx())
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer d.stop()

	return fn(d)
}

func findIn(pattern string) (drivers.In, error) {
	for _, in := range midi.GetInPorts() {
		if containsCI(in.String(), pattern) {
			return in, nil
		}
	}
	return nil, fmt.Errorf("no MIDI input matching %q (try `footswitchctl list`)", pattern)
}

func findOut(pattern string) (drivers.Out, error) {
	for _, out := range midi.GetOutPorts() {
		if containsCI(out.String(), pattern) {
			return out, nil
		}
	}
	return nil, fmt.Errorf("no MIDI output matching %q (try `footswitchctl list`)", pattern)
}

func containsCI(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// request sends one command payload and waits for the matching reply payload.
func (d *device) request(cmd byte, body ...byte) ([]byte, error) {
	payload := append(append(append([]byte{}, header...), cmd), body...)
	if err := d.send(midi.SysEx(payload)); err != nil {
		return nil, fmt.Errorf("send: %w", err)
	}
	deadline := time.After(d.timeout)
	for {
		select {
		case reply := <-d.replies:
			if reply[len(header)] == cmd {
				return reply[len(header)+1:], nil
			}
		case <-deadline:
			return nil, errors.New("timed out waiting for device reply")
		}
	}
}

func cmdInfo(d *device) error {
	body, err := d.request(sysex.CmdGetInfo)
	if err != nil {
		return err
	}
	if len(body) < 2 {
		return fmt.Errorf("malformed GET_INFO reply: % X", body)
	}
	fmt.Printf("switches: %d\nprotocol: v%d\n", body[0], body[1])
	return nil
}

func cmdGet(d *device, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	sw := fs.Int("switch", 0, "switch index")
	event := fs.String("event", "press", "press or release")
	if err := fs.Parse(args); err != nil {
		return err
	}
	edge, err := parseEdge(*event)
	if err != nil {
		return err
	}

	body, err := d.request(sysex.CmdGetMessage, byte(*sw), byte(edge))
	if err != nil {
		return err
	}
	if len(body) < 3 || len(body) < 3+int(body[2])*4 {
		return fmt.Errorf("malformed GET_MESSAGE reply: % X", body)
	}
	count := int(body[2])
	fmt.Printf("switch %d %s: %d action(s)\n", body[0], contracts.Edge(body[1]), count)
	for i := 0; i < count; i++ {
		a := body[3+i*4 : 3+i*4+4]
		fmt.Printf("  %d: %s ch=%d p1=%d p2=%d\n",
			i, contracts.ActionKind(a[0]), a[1], a[2], a[3])
	}
	return nil
}

func cmdSet(d *device, args []string) error {
	fs := flag.NewFlagSet("set", flag.ExitOnError)
	sw := fs.Int("switch", 0, "switch index")
	event := fs.String("event", "press", "press or release")
	actions := fs.String("actions", "", "comma-separated kind:channel:param1:param2 (kind: none|cc|pc|note)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	edge, err := parseEdge(*event)
	if err != nil {
		return err
	}
	list, err := parseActions(*actions)
	if err != nil {
		return err
	}

	body := []byte{byte(*sw), byte(edge), byte(len(list))}
	for _, a := range list {
		body = append(body, byte(a.Kind), a.Channel, a.Param1, a.Param2)
	}
	reply, err := d.request(sysex.CmdSetMessage, body...)
	if err != nil {
		return err
	}
	if len(reply) < 1 || reply[0] != sysex.SetStatusOK {
		return errors.New("device rejected the configuration")
	}
	fmt.Printf("switch %d %s: %d action(s) stored\n", *sw, edge, len(list))
	return nil
}

func parseEdge(s string) (contracts.Edge, error) {
	switch strings.ToLower(s) {
	case "press":
		return contracts.Press, nil
	case "release":
		return contracts.Release, nil
	}
	return 0, fmt.Errorf("unknown event %q (want press or release)", s)
}

var kindNames = map[string]contracts.ActionKind{
	"none": contracts.KindNone,
	"cc":   contracts.KindControlChange,
	"pc":   contracts.KindProgramChange,
	"note": contracts.KindNote,
}

func parseActions(s string) ([]contracts.Action, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("missing -actions")
	}
	parts := strings.Split(s, ",")
	if len(parts) > contracts.MaxActionsPerEvent {
		return nil, fmt.Errorf("%d actions exceed the per-event limit of %d",
			len(parts), contracts.MaxActionsPerEvent)
	}
	out := make([]contracts.Action, 0, len(parts))
	for _, part := range parts {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) != 4 {
			return nil, fmt.Errorf("bad action %q (want kind:channel:param1:param2)", part)
		}
		kind, ok := kindNames[strings.ToLower(fields[0])]
		if !ok {
			return nil, fmt.Errorf("unknown action kind %q", fields[0])
		}
		nums := make([]uint8, 3)
		for i, f := range fields[1:] {
			v, err := strconv.ParseUint(f, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("bad number in %q: %w", part, err)
			}
			nums[i] = uint8(v)
		}
		a := contracts.Action{Kind: kind, Channel: nums[0], Param1: nums[1], Param2: nums[2]}
		if !a.Valid() {
			return nil, fmt.Errorf("action %q out of range (channel 0-15, params 0-127)", part)
		}
		out = append(out, a)
	}
	return out, nil
}
