package xmain

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"
)

// Opts binds flags to environment variables. A set environment variable becomes
// the flag default so an explicit flag always wins.
type Opts struct {
	Args  []string
	Flags *pflag.FlagSet
	env   *xos.Env
	log   *cmdlog.Logger

	registeredEnvs map[string]string
}

func NewOpts(env *xos.Env, log *cmdlog.Logger, args []string) *Opts {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.Usage = func() {}
	flags.SetOutput(io.Discard)
	return &Opts{
		Args:           args,
		Flags:          flags,
		env:            env,
		log:            log,
		registeredEnvs: make(map[string]string),
	}
}

// Help is pflag's own listing followed by the bound environment variables.
func (o *Opts) Help() string {
	b := &strings.Builder{}
	o.Flags.SetOutput(b)
	o.Flags.PrintDefaults()
	o.Flags.SetOutput(io.Discard)

	if envs := o.envs(); len(envs) > 0 {
		b.WriteString("\nYou may persistently set the following as environment variables (flags take precedent):\n")
		b.WriteString(strings.Join(envs, "\n"))
	}
	return b.String()
}

// Defaults lists every flag with its environment variable and default, wrapping
// usage text at 80 columns.
func (o *Opts) Defaults() string {
	var lines []string
	maxlen := 0
	o.Flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		line := ""
		if f.Shorthand != "" {
			line = fmt.Sprintf("  -%s, --%s", f.Shorthand, f.Name)
		} else {
			line = fmt.Sprintf("      --%s", f.Name)
		}
		varname, usage := pflag.UnquoteUsage(f)
		if varname != "" {
			line += " " + varname
		}
		line += "\x00"
		if len(line) > maxlen {
			maxlen = len(line)
		}

		if envKey, ok := o.registeredEnvs[f.Name]; ok {
			line += fmt.Sprintf("$%s. ", envKey)
		}
		line += usage
		if f.DefValue != "" && f.DefValue != "[]" {
			if f.Value.Type() == "string" {
				line += fmt.Sprintf(" (default %q)", f.DefValue)
			} else {
				line += fmt.Sprintf(" (default %s)", f.DefValue)
			}
		}
		lines = append(lines, line)
	})

	b := &strings.Builder{}
	for _, line := range lines {
		sidx := strings.Index(line, "\x00")
		spacing := strings.Repeat(" ", maxlen-sidx)
		fmt.Fprintln(b, line[:sidx], spacing, wrap(maxlen+2, 80, line[sidx+1:]))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (o *Opts) envs() []string {
	var envs []string
	o.Flags.VisitAll(func(f *pflag.Flag) {
		if envKey, ok := o.registeredEnvs[f.Name]; ok {
			envs = append(envs, "- $"+envKey)
		}
	})
	return envs
}

func (o *Opts) getEnv(flag, k string) string {
	if k != "" {
		o.registeredEnvs[flag] = k
		return o.env.Getenv(k)
	}
	return ""
}

func (o *Opts) Int64(envKey, flag, shortFlag string, defaultVal int64, usage string) (*int64, error) {
	if env := o.getEnv(flag, envKey); env != "" {
		envVal, err := strconv.ParseInt(env, 10, 64)
		if err != nil {
			return nil, fmt.Errorf(`invalid environment variable %s. Expected int64. Found "%v".`, envKey, env)
		}
		defaultVal = envVal
	}

	return o.Flags.Int64P(flag, shortFlag, defaultVal, usage), nil
}

func (o *Opts) String(envKey, flag, shortFlag string, defaultVal, usage string) *string {
	if env := o.getEnv(flag, envKey); env != "" {
		defaultVal = env
	}

	return o.Flags.StringP(flag, shortFlag, defaultVal, usage)
}

// StringArray is a repeatable flag. Values are kept verbatim, commas included.
// The environment variable supplies a single default value.
func (o *Opts) StringArray(envKey, flag, shortFlag string, usage string) *[]string {
	var defaultVal []string
	if env := o.getEnv(flag, envKey); env != "" {
		defaultVal = []string{env}
	}

	return o.Flags.StringArrayP(flag, shortFlag, defaultVal, usage)
}

func (o *Opts) Bool(envKey, flag, shortFlag string, defaultVal bool, usage string) (*bool, error) {
	if env := o.getEnv(flag, envKey); env != "" {
		if !boolyEnv(env) {
			return nil, fmt.Errorf(`invalid environment variable %s. Expected bool. Found "%s".`, envKey, env)
		}
		defaultVal = truthyEnv(env)
	}

	return o.Flags.BoolP(flag, shortFlag, defaultVal, usage), nil
}

func boolyEnv(s string) bool {
	return falseyEnv(s) || truthyEnv(s)
}

func falseyEnv(s string) bool {
	return s == "0" || s == "false"
}

func truthyEnv(s string) bool {
	return s == "1" || s == "true"
}
