// This file is part of pulse6502.
//
// pulse6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pulse6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pulse6502.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gdamore/tcell"
	"github.com/jetsetilly/pulse6502/cartridgeloader"
	"github.com/jetsetilly/pulse6502/curated"
	"github.com/jetsetilly/pulse6502/debugger"
	"github.com/jetsetilly/pulse6502/debugger/monitor"
	"github.com/jetsetilly/pulse6502/debugger/script"
	"github.com/jetsetilly/pulse6502/debugger/terminal/easyterm"
	"github.com/jetsetilly/pulse6502/disassembly"
	"github.com/jetsetilly/pulse6502/hardware/cpu"
	"github.com/jetsetilly/pulse6502/hardware/memory"
	"github.com/jetsetilly/pulse6502/logger"
	"github.com/jetsetilly/pulse6502/modalflag"
	"github.com/jetsetilly/pulse6502/nestest"
	"github.com/jetsetilly/pulse6502/performance"
	"github.com/jetsetilly/pulse6502/performance/limiter"
	"github.com/jetsetilly/pulse6502/rom"
	"github.com/jetsetilly/pulse6502/rom/ines"
	"github.com/jetsetilly/pulse6502/statsview"
	"github.com/jetsetilly/pulse6502/version"
	"golang.org/x/term"
)

// exit values
const (
	exitOK        = 0
	exitArgs      = 10
	exitModeError = 20
)

// error patterns for problems with the command line
const (
	unknownLayout    = "unknown memory layout (%s)"
	requiredArgument = "%s required for %s mode"
	tooManyArguments = "too many arguments for %s mode"
	notAvailable     = "%s is not available in this build"
)

// the memory layouts that can be selected with the -memory flag
const (
	memoryNES  = "NES"
	memoryFlat = "FLAT"
)

func main() {
	// ctrl-c ends the program. the STEP and MONITOR modes handle ctrl-c
	// themselves because the terminal is not generating signals in those
	// modes
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		fmt.Println("\r")
		os.Exit(exitOK)
	}()

	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. returns the exit
// value of the program
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "NESTEST", "DISASM", "MONITOR", "STEP", "SCRIPT", "PERFORMANCE", "BIN2ROM", "INES2ROM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	switch md.Mode() {
	case "RUN":
		err = run(output, md)
	case "NESTEST":
		err = runNestest(output, md)
	case "DISASM":
		err = disasm(output, md)
	case "MONITOR":
		err = runMonitor(md)
	case "STEP":
		err = step(md)
	case "SCRIPT":
		err = runScript(output, md)
	case "PERFORMANCE":
		err = perform(output, md)
	case "BIN2ROM":
		err = bin2rom(output, md)
	case "INES2ROM":
		err = ines2rom(output, md)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// machineFlags are the flags shared by every mode that runs a program
type machineFlags struct {
	md     *modalflag.Modes
	format *string
	origin *uint16
	pc     *uint16
	layout *string
	log    *bool
	undoc  *bool
}

func addMachineFlags(md *modalflag.Modes) *machineFlags {
	return &machineFlags{
		md:     md,
		format: md.AddString("format", "AUTO", "program format: ROM, BIN, NES"),
		origin: md.AddAddress("origin", 0x0400, "load address of BIN programs"),
		pc:     md.AddAddress("pc", 0, "start address. the reset vector is used if not specified"),
		layout: md.AddString("memory", memoryNES, "memory layout: NES, FLAT"),
		log:    md.AddBool("log", false, "echo debugging log to stdout"),
		undoc:  md.AddBool("noundoc", false, "treat undocumented opcodes as unimplemented"),
	}
}

func (mf *machineFlags) isSet(name string) bool {
	var set bool
	mf.md.Visit(func(f string) {
		if f == name {
			set = true
		}
	})
	return set
}

// create a reset session with the program loaded into memory
func (mf *machineFlags) session(output io.Writer, filename string) (*debugger.Session, error) {
	if *mf.log {
		logger.SetEcho(logger.NewColorizer(output))
	} else {
		logger.SetEcho(nil)
	}

	cl := cartridgeloader.NewLoader(filename, *mf.format)
	img, err := cl.Image(*mf.origin)
	if err != nil {
		return nil, err
	}

	var mem *memory.MemoryMap
	var ppu *memory.PPURegisters

	switch strings.ToUpper(*mf.layout) {
	case memoryNES:
		mem, ppu, err = memory.NewNES()
		if err != nil {
			return nil, err
		}
		if err := mem.AddROM("PRG", img.Origin, img.Data); err != nil {
			return nil, err
		}
	case memoryFlat:
		mem = memory.NewMemoryMap()
		if err := mem.AddRAM("RAM", 0x0000, 0x10000); err != nil {
			return nil, err
		}
		for i, v := range img.Data {
			if err := mem.Poke(img.Origin+uint16(i), v); err != nil {
				return nil, err
			}
		}
	default:
		return nil, curated.Errorf(unknownLayout, *mf.layout)
	}

	mc := cpu.NewCPU(mem)
	mc.NoUndocumented = *mf.undoc

	sess := debugger.NewSession(mc, mem, ppu)
	if err := sess.Reset(); err != nil {
		return nil, err
	}

	if mf.isSet("pc") {
		if err := mc.LoadPC(*mf.pc); err != nil {
			return nil, err
		}
	}

	return sess, nil
}

func oneArg(md *modalflag.Modes, what string) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", curated.Errorf(requiredArgument, what, md.String())
	case 1:
		return md.GetArg(0), nil
	}
	return "", curated.Errorf(tooManyArguments, md.String())
}

func run(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	cycles := md.AddUint64("cycles", 0, "maximum number of cycles to run for. zero is no limit")
	until := md.AddAddress("until", 0, "run until the PC reaches the address")
	trace := md.AddBool("trace", false, "print a nestest style trace line for every instruction")
	realtime := md.AddBool("realtime", false, "run at the speed of an NTSC NES")
	dump := md.AddString("dump", "", "write a graphviz description of the CPU to file on completion")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md, "program")
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return curated.Errorf(notAvailable, "statsview")
		}
		stop := statsview.Launch(output)
		defer stop()
	}

	sess, err := mf.session(output, filename)
	if err != nil {
		return err
	}

	if *trace {
		sess.Trace = func(s string) {
			fmt.Fprintln(output, s)
		}
	}

	var h debugger.Halt

	if *realtime {
		h, err = runRealtime(sess, *cycles)
	} else if mf.isSet("until") {
		h, err = sess.RunUntil(*until, *cycles)
	} else {
		h, err = sess.Run(*cycles)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\n%s (%d cycles)\n", h, sess.CPU, sess.CPU.Cycles)

	if *dump != "" {
		f, err := os.Create(*dump)
		if err != nil {
			return err
		}
		defer f.Close()
		sess.Dump(f)
	}

	return nil
}

// runRealtime runs the session in slices of cycles, one slice for every tick
// of a 60Hz limiter
func runRealtime(sess *debugger.Session, limit uint64) (debugger.Halt, error) {
	const rate = 60
	const slice = performance.NTSCClock / rate

	lim := limiter.NewLimiter(rate)
	defer lim.Stop()

	start := sess.CPU.Cycles
	for {
		lim.Wait()

		n := uint64(slice)
		if limit > 0 {
			n = min(n, limit-(sess.CPU.Cycles-start))
		}

		h, err := sess.Run(n)
		if err != nil || h.Reason != debugger.HaltLimit {
			return h, err
		}

		if limit > 0 && sess.CPU.Cycles-start >= limit {
			return h, nil
		}
	}
}

func runNestest(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	*mf.pc = 0xc000
	scale := md.AddUint64("scale", 1, "divisor for the CYC field of the log. use 3 for logs that count PPU dots")
	cont := md.AddBool("continue", false, "continue after a failed line")
	passes := md.AddBool("passes", false, "report lines that pass")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return curated.Errorf(requiredArgument, "program and log file", md.String())
	}

	// the automation entry point of nestest.nes is always used unless the
	// -pc flag says otherwise
	sess, err := mf.session(output, md.GetArg(0))
	if err != nil {
		return err
	}
	if !mf.isSet("pc") {
		if err := sess.CPU.LoadPC(*mf.pc); err != nil {
			return err
		}
	}

	f, err := os.Open(md.GetArg(1))
	if err != nil {
		return err
	}
	defer f.Close()

	h := nestest.NewHarness(sess.CPU)
	h.Output = output
	h.Scale = *scale
	h.ReportPasses = *passes
	if *cont {
		h.MaxFailures = -1
	}
	if f, ok := output.(*os.File); ok {
		h.Color = term.IsTerminal(int(f.Fd()))
	}

	res, err := h.Run(f)
	fmt.Fprintln(output, res)

	return err
}

func disasm(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", "AUTO", "program format: ROM, BIN, NES")
	origin := md.AddAddress("origin", 0x0400, "load address of BIN programs")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md, "program")
	if err != nil {
		return err
	}

	cl := cartridgeloader.NewLoader(filename, *format)
	img, err := cl.Image(*origin)
	if err != nil {
		return err
	}

	mem := memory.NewMemoryMap()
	if err := mem.AddROM(cl.ShortName(), img.Origin, img.Data); err != nil {
		return err
	}

	return disassembly.Write(output, mem, img.Origin, img.Memtop())
}

func runMonitor(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	dump := md.AddString("dump", "pulse6502.dot", "file written to by the dump key")
	cycles := md.AddUint64("cycles", 10000000, "maximum number of cycles for the run keys. zero is no limit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md, "program")
	if err != nil {
		return err
	}

	// the log would corrupt the screen
	*mf.log = false

	sess, err := mf.session(io.Discard, filename)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}

	mon := monitor.NewMonitor(sess, screen)
	mon.DumpFile = *dump
	mon.RunLimit = *cycles

	return mon.Run()
}

func step(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md, "program")
	if err != nil {
		return err
	}

	sess, err := mf.session(os.Stdout, filename)
	if err != nil {
		return err
	}

	et, err := easyterm.NewTerminal("/dev/tty", os.Stdout)
	if err != nil {
		return err
	}
	defer et.CleanUp()

	// ctrl-c and ctrl-z arrive as key presses in raw mode
	if err := et.RawMode(); err != nil {
		return err
	}

	return stepSession(et, sess, et.Keys(), easyterm.SuspendProcess)
}

// the number of cycles run by the continue key between checks for an
// interrupting key press
const stepRunSlice = 100000

// stepSession drives the session from key presses. returns when the keys
// channel is closed, when the quit or interrupt key is pressed, or when the
// CPU is killed
func stepSession(output io.Writer, sess *debugger.Session, keys <-chan easyterm.Key, suspend func() error) error {
	fmt.Fprint(output, "space:instruction p:pulse c:continue q:quit\n")

	for {
		if sess.CPU.InstructionBoundary() {
			fmt.Fprintf(output, "%s\n", debugger.TraceLine(sess.CPU, sess.Mem))
		} else {
			fmt.Fprintf(output, "  %s\n", sess.CPU)
		}

		k, ok := <-keys
		if !ok {
			return nil
		}

		var err error

		switch k.Rune {
		case 'q', easyterm.KeyInterrupt:
			return nil
		case easyterm.KeySuspend:
			err = suspend()
		case ' ', 'n', easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			err = sess.StepInstruction()
		case 'p':
			err = sess.Pulse()
		case 'c':
			var h debugger.Halt
			h, err = continueSession(sess, keys)
			fmt.Fprintf(output, "%s\n", h)
		}
		if err != nil {
			return err
		}

		if sess.CPU.Killed {
			fmt.Fprint(output, "cpu killed\n")
			return nil
		}
	}
}

// continueSession runs the session until it halts or until the quit or
// interrupt key is pressed. other keys pressed while running are discarded
func continueSession(sess *debugger.Session, keys <-chan easyterm.Key) (debugger.Halt, error) {
	for {
		h, err := sess.Run(stepRunSlice)
		if err != nil || h.Reason != debugger.HaltLimit {
			return h, err
		}

		select {
		case k, ok := <-keys:
			if !ok || k.Rune == easyterm.KeyInterrupt || k.Rune == 'q' {
				return debugger.Halt{Reason: debugger.HaltInterrupt, PC: sess.CPU.PC}, nil
			}
		default:
		}
	}
}

func runScript(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	exec := md.AddString("e", "", "run the Lua source instead of a script file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var filename, scriptFile string
	switch len(md.RemainingArgs()) {
	case 1:
		filename = md.GetArg(0)
		if *exec == "" {
			return curated.Errorf(requiredArgument, "script file or -e flag", md.String())
		}
	case 2:
		filename = md.GetArg(0)
		scriptFile = md.GetArg(1)
	default:
		return curated.Errorf(requiredArgument, "program and script file", md.String())
	}

	sess, err := mf.session(output, filename)
	if err != nil {
		return err
	}

	scr := script.NewScript(sess, output)
	defer scr.Close()

	if *exec != "" {
		if err := scr.Run(*exec); err != nil {
			return err
		}
	}

	if scriptFile != "" {
		return scr.RunFile(scriptFile)
	}

	return nil
}

func perform(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run emulation for duration")
	profile := md.AddString("profile", "NONE", "create profile reports: CPU, MEM")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md, "program")
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	sess, err := mf.session(output, filename)
	if err != nil {
		return err
	}
	sess.CPU.Logging = false

	_, err = performance.Check(output, sess, prf, *duration)
	return err
}

// write image in the text ROM format to the named file or to output if the
// filename is empty
func writeROM(output io.Writer, outFile string, img *rom.Image, comment string) error {
	if outFile == "" {
		return rom.Write(output, img, comment)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return rom.Write(f, img, comment)
}

func bin2rom(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", 0x0400, "load address of the binary")
	outFile := md.AddString("o", "", "output file. stdout if not specified")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md, "binary file")
	if err != nil {
		return err
	}

	cl := cartridgeloader.NewLoader(filename, cartridgeloader.FormatBIN)
	img, err := cl.Image(*origin)
	if err != nil {
		return err
	}

	return writeROM(output, *outFile, img, fmt.Sprintf("%s (sha1 %s)", cl.ShortName(), cl.Hash))
}

func ines2rom(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	outFile := md.AddString("o", "", "output file. stdout if not specified")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md, "iNES file")
	if err != nil {
		return err
	}

	cl := cartridgeloader.NewLoader(filename, cartridgeloader.FormatNES)
	if err := cl.Load(); err != nil {
		return err
	}

	cart, err := ines.Parse(cl.Data)
	if err != nil {
		return err
	}

	return writeROM(output, *outFile, cart.PRGImage(), fmt.Sprintf("%s\n%s", cl.ShortName(), cart.Header))
}
