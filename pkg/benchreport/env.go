package benchreport

import (
	"bufio"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// DetectEnv captures the traits of the machine a report was produced on.
func DetectEnv() ReportEnv {
	return ReportEnv{
		OS:            runtime.GOOS,
		Arch:          runtime.GOARCH,
		CPUModel:      detectCPUModel(),
		CPUNumLogical: runtime.NumCPU(),
		GoVersion:     runtime.Version(),
	}
}

func detectCPUModel() string {
	if runtime.GOOS == "darwin" {
		out, err := exec.Command("sysctl", "-n", "machdep.cpu.brand_string").Output()
		if err == nil {
			return strings.TrimSpace(string(out))
		}
	}
	if runtime.GOOS == "linux" {
		f, err := os.Open("/proc/cpuinfo")
		if err == nil {
			defer f.Close()
			sc := bufio.NewScanner(f)
			for sc.Scan() {
				line := sc.Text()
				if strings.HasPrefix(line, "model name") {
					parts := strings.SplitN(line, ":", 2)
					if len(parts) == 2 {
						return strings.TrimSpace(parts[1])
					}
				}
			}
		}
	}
	return runtime.GOARCH + " CPU"
}
