package shell

import (
	"errors"
	"fmt"
	"runtime"

	"nvicshell/internal/buildinfo"
)

func registerSysCommands(r *registry) error {
	for _, cmd := range []command{
		{Name: "uptime", Usage: "uptime", Desc: "Show uptime (ticks).", Run: cmdUptime},
		{Name: "version", Usage: "version", Desc: "Show build version.", Run: cmdVersion},
		{Name: "uname", Usage: "uname [-a]", Desc: "Show system information.", Run: cmdUname},
		{Name: "chip", Usage: "chip", Desc: "Show the selected chip series.", Run: cmdChip},
		{Name: "free", Usage: "free [-h]", Desc: "Show memory usage.", Run: cmdFree},
	} {
		if err := r.register(cmd); err != nil {
			return err
		}
	}
	return nil
}

func cmdUptime(s *Service, _ []string) error {
	return s.printString(fmt.Sprintf("up %d ticks\n", s.ticks))
}

func cmdVersion(s *Service, _ []string) error {
	return s.printString(fmt.Sprintf("%s %s %s\n", buildinfo.Version, buildinfo.Commit, buildinfo.Date))
}

func cmdUname(s *Service, args []string) error {
	if len(args) == 0 {
		return s.printString(fmt.Sprintf("%s %s\n", runtime.GOOS, runtime.GOARCH))
	}
	if len(args) == 1 && args[0] == "-a" {
		fam := s.nvic.Family()
		return s.printString(fmt.Sprintf("nvicshell %s %s %s %s %s\n",
			fam.Series, buildinfo.Short(), buildinfo.Commit, fam.Core, runtime.GOARCH))
	}
	return errors.New("usage: uname [-a]")
}

func cmdChip(s *Service, args []string) error {
	if len(args) != 0 {
		return errors.New("usage: chip")
	}
	fam := s.nvic.Family()
	_ = s.printString(fmt.Sprintf("series:   %s\n", fam.Series))
	_ = s.printString(fmt.Sprintf("core:     %s\n", fam.Core))
	_ = s.printString(fmt.Sprintf("priobits: %d\n", fam.PrioBits))
	_ = s.printString(fmt.Sprintf("vectors:  %d\n", fam.Len()))
	_ = s.printString(fmt.Sprintf("except:   %d\n", len(fam.Exceptions())))
	return nil
}

func cmdFree(s *Service, args []string) error {
	human := false
	if len(args) == 1 {
		if args[0] != "-h" {
			return errors.New("usage: free [-h]")
		}
		human = true
	} else if len(args) > 1 {
		return errors.New("usage: free [-h]")
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	fmtVal := func(v uint64) string {
		if human {
			return fmtBytes(v)
		}
		return fmt.Sprintf("%d", v)
	}

	heapFree := uint64(0)
	if ms.HeapSys >= ms.HeapAlloc {
		heapFree = ms.HeapSys - ms.HeapAlloc
	}

	_ = s.printString("           total       used       free\n")
	_ = s.printString(fmt.Sprintf("heap %11s %10s %10s\n", fmtVal(ms.HeapSys), fmtVal(ms.HeapAlloc), fmtVal(heapFree)))
	return nil
}

func fmtBytes(v uint64) string {
	const (
		kib = 1024
		mib = 1024 * kib
	)

	switch {
	case v >= mib:
		return fmt.Sprintf("%.1fMiB", float64(v)/float64(mib))
	case v >= kib:
		return fmt.Sprintf("%.1fKiB", float64(v)/float64(kib))
	default:
		return fmt.Sprintf("%dB", v)
	}
}
