package version

import "github.com/rowanmc/mccore/internal/rules"

// defaultJVMArguments builds the fixed vanilla JVM argument template used
// when a manifest has no "arguments" block (legacy, pre-1.13).
func defaultJVMArguments() []ArgumentElement {
	return []ArgumentElement{
		{
			Conditional: true,
			Rules: []rules.Rule{
				{Action: rules.Allow, OS: &rules.OS{Name: "windows"}},
			},
			Values: []string{"-XX:HeapDumpPath=MojangTricksIntelDriversForPerformance_javaw.exe_minecraft.exe.heapdump"},
		},
		{
			Conditional: true,
			Rules: []rules.Rule{
				{Action: rules.Allow, OS: &rules.OS{Name: "windows", Version: "^10\\."}},
			},
			Values: []string{"-Dos.name=Windows 10", "-Dos.version=10.0"},
		},
		{Plain: "-Djava.library.path=${natives_directory}"},
		{Plain: "-Dminecraft.launcher.brand=${launcher_name}"},
		{Plain: "-Dminecraft.launcher.version=${launcher_version}"},
		{Plain: "-cp"},
		{Plain: "${classpath}"},
	}
}
