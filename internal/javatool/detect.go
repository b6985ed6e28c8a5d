// Package javatool finds Java installations on the host and picks the
// best match for a version's declared javaVersion.majorVersion
// requirement. It is CLI-only advisory tooling: internal/version,
// internal/launch and internal/diagnose never consult it, and a caller
// is always free to point LaunchOptions.JavaPath at whatever it wants.
package javatool

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

var versionLineRegex = regexp.MustCompile(`(?:java|openjdk) version "([^"]+)"`)

// Installation is one Java runtime found on the host.
type Installation struct {
	Path         string
	Version      string
	MajorVersion int
	Is64Bit      bool
	Vendor       string
}

// Detector searches well-known install locations plus JAVA_HOME and PATH.
type Detector struct {
	searchPaths []string
}

// NewDetector builds a Detector with the host's default search paths.
func NewDetector() *Detector {
	return &Detector{searchPaths: defaultSearchPaths()}
}

// FindAll returns every distinct Java installation the detector can see.
func (d *Detector) FindAll() []Installation {
	var found []Installation
	seen := make(map[string]bool)

	add := func(inst *Installation) {
		if inst != nil && !seen[inst.Path] {
			found = append(found, *inst)
			seen[inst.Path] = true
		}
	}

	if home := os.Getenv("JAVA_HOME"); home != "" {
		add(d.checkJavaHome(home))
	}
	if javaPath, err := exec.LookPath("java"); err == nil {
		add(d.checkJava(javaPath))
	}
	for _, root := range d.searchPaths {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if javaPath := findJavaInDir(filepath.Join(root, entry.Name())); javaPath != "" {
				add(d.checkJava(javaPath))
			}
		}
	}
	return found
}

// FindBest returns the 64-bit installation whose major version most
// tightly satisfies minMajorVersion ("closest release at or above
// minMajorVersion", falling back to the newest available installation
// when none qualify). minMajorVersion <= 0 is treated as "any" — the
// caller typically passes a version's javaVersion.majorVersion here.
func (d *Detector) FindBest(minMajorVersion int) *Installation {
	return pickBest(d.FindAll(), minMajorVersion)
}

// pickBest is FindBest's selection logic, factored out so it can be
// exercised against a fixed installation list without touching the host.
func pickBest(installations []Installation, minMajorVersion int) *Installation {
	if len(installations) == 0 {
		return nil
	}

	constraintStr := ">=0.0.0"
	if minMajorVersion > 0 {
		constraintStr = fmt.Sprintf(">=%d.0.0", minMajorVersion)
	}
	constraint, err := semver.NewConstraint(constraintStr)
	if err != nil {
		return nil
	}

	var best *Installation
	var bestVersion *semver.Version
	for i := range installations {
		inst := &installations[i]
		if !inst.Is64Bit {
			continue
		}
		v, err := semver.NewVersion(fmt.Sprintf("%d.0.0", inst.MajorVersion))
		if err != nil || !constraint.Check(v) {
			continue
		}
		if best == nil || v.LessThan(bestVersion) {
			best = inst
			bestVersion = v
		}
	}
	if best != nil {
		return best
	}

	// Nothing satisfies the requirement outright; fall back to the
	// newest 64-bit installation available so the caller at least has
	// something to try.
	for i := range installations {
		inst := &installations[i]
		if !inst.Is64Bit {
			continue
		}
		if best == nil || inst.MajorVersion > best.MajorVersion {
			best = inst
		}
	}
	return best
}

func defaultSearchPaths() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/Library/Java/JavaVirtualMachines",
			"/System/Library/Java/JavaVirtualMachines",
			filepath.Join(os.Getenv("HOME"), ".sdkman/candidates/java"),
			filepath.Join(os.Getenv("HOME"), ".jenv/versions"),
		}
	case "linux":
		return []string{
			"/usr/lib/jvm",
			"/usr/lib64/jvm",
			"/usr/java",
			filepath.Join(os.Getenv("HOME"), ".sdkman/candidates/java"),
			filepath.Join(os.Getenv("HOME"), ".jenv/versions"),
		}
	case "windows":
		return []string{
			`C:\Program Files\Java`,
			`C:\Program Files\Eclipse Adoptium`,
			`C:\Program Files\Zulu`,
			`C:\Program Files\Microsoft\jdk`,
		}
	default:
		return nil
	}
}

func findJavaInDir(dir string) string {
	javaName := "java"
	if runtime.GOOS == "windows" {
		javaName = "java.exe"
	}
	for _, candidate := range []string{
		filepath.Join(dir, "bin", javaName),
		filepath.Join(dir, "Contents", "Home", "bin", javaName),
	} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

func (d *Detector) checkJavaHome(javaHome string) *Installation {
	javaPath := findJavaInDir(javaHome)
	if javaPath == "" {
		return nil
	}
	return d.checkJava(javaPath)
}

func (d *Detector) checkJava(javaPath string) *Installation {
	realPath, err := filepath.EvalSymlinks(javaPath)
	if err != nil {
		realPath = javaPath
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	output, err := exec.CommandContext(ctx, realPath, "-version").CombinedOutput()
	if err != nil {
		return nil
	}
	return parseVersionOutput(realPath, string(output))
}

func parseVersionOutput(path, output string) *Installation {
	inst := &Installation{Path: path}

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()

		if matches := versionLineRegex.FindStringSubmatch(line); len(matches) > 1 {
			inst.Version = matches[1]
			inst.MajorVersion = parseMajorVersion(matches[1])
		}

		if strings.Contains(line, "64-Bit") || strings.Contains(line, "amd64") || strings.Contains(line, "x86_64") {
			inst.Is64Bit = true
		}

		lineLower := strings.ToLower(line)
		switch {
		case strings.Contains(lineLower, "graalvm"):
			inst.Vendor = "GraalVM"
		case strings.Contains(lineLower, "azul"):
			inst.Vendor = "Azul Zulu"
		case strings.Contains(lineLower, "adoptium") || strings.Contains(lineLower, "temurin"):
			inst.Vendor = "Eclipse Adoptium"
		case strings.Contains(lineLower, "oracle"):
			inst.Vendor = "Oracle"
		case strings.Contains(lineLower, "microsoft"):
			inst.Vendor = "Microsoft"
		case strings.Contains(lineLower, "openjdk") && inst.Vendor == "":
			inst.Vendor = "OpenJDK"
		}
	}

	if runtime.GOOS != "windows" && !inst.Is64Bit {
		inst.Is64Bit = true
	}

	if inst.Version == "" {
		return nil
	}
	return inst
}

func parseMajorVersion(version string) int {
	if strings.HasPrefix(version, "1.") {
		parts := strings.Split(version, ".")
		if len(parts) >= 2 {
			v, _ := strconv.Atoi(parts[1])
			return v
		}
	}
	parts := strings.Split(version, ".")
	if len(parts) >= 1 {
		v, _ := strconv.Atoi(parts[0])
		return v
	}
	return 0
}

// Format renders an Installation for CLI display.
func Format(inst *Installation) string {
	arch := "32-bit"
	if inst.Is64Bit {
		arch = "64-bit"
	}
	vendor := inst.Vendor
	if vendor == "" {
		vendor = "Unknown"
	}
	return fmt.Sprintf("Java %d (%s, %s)", inst.MajorVersion, vendor, arch)
}
