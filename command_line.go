package loggen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	Commands = map[string]bool{
		"run":   true,
		"shell": true,
	}
	OptionPrefixes = []string{"--", "-"}
	OptionList     = []*Option{
		&Option{
			Name:            "P",
			HasArgument:     true,
			HasDefaultValue: false,
			Doc:             "specify a property file",
		},
		&Option{
			Name:            "p",
			HasArgument:     true,
			HasDefaultValue: false,
			Doc:             "specify a property value",
		},
		&Option{
			Name:            "s",
			HasArgument:     false,
			HasDefaultValue: false,
			Doc:             "Print status to stderr",
		},
		&Option{
			Name:            "ingester",
			HasArgument:     true,
			HasDefaultValue: false,
			Doc:             "use a specified ingester class(can also set the \"ingester\" property)",
		},
		&Option{
			Name:            "table",
			HasArgument:     true,
			HasDefaultValue: true,
			DefaultValue:    PropertyTableNameDefault,
			Doc:             "use the table name instead of the default %s",
		},
		&Option{
			Name:            "h",
			HasArgument:     false,
			HasDefaultValue: false,
			Doc:             "show this help message and exit",
		},
		&Option{
			Name:            "help",
			HasArgument:     false,
			HasDefaultValue: false,
			Doc:             "show this help message and exit",
		},
	}
	Options = make(map[string]*Option)

	ProgramName = ""
)

type Option struct {
	Name            string
	HasArgument     bool
	HasDefaultValue bool
	DefaultValue    string
	Doc             string
}

type Arguments struct {
	Command  string
	Ingester string
	Options  map[string]string
	Properties
}

func Usage() {
	usageFormat := `usage: %s command ingester [options]

Commands:
  run                Execute the ingestion benchmark
  shell              Interactive row inspection mode

Ingesters:
  basic              A demo ingester that counts rows and discards them
  mysql              Ingest into a MySQL compatible store
  bolt               Ingest into a local bbolt file

Options:
  -P filename          : specify a property file
  -p name=value        : specify a property value
  -s                   : Print status to stderr
  -ingester classname  : use a specified ingester class(can also set the "ingester" property)
  -table tablename     : use the table name instead of the default %s

optional arguments:
  -h, --help         show this help message and exit`
	Println(usageFormat, ProgramName, PropertyTableNameDefault)
}

func init() {
	ProgramName = filepath.Base(os.Args[0])

	// init options
	for i := 0; i < len(OptionList); i++ {
		o := OptionList[i]
		Options[o.Name] = o
	}
}

func ExitOnError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}

func ParseArgs() *Arguments {
	if len(os.Args) <= 1 {
		ExitOnError("no enough argument")
	}

	index := 1
	firstArg := os.Args[index]
	if firstArg == "-h" || firstArg == "--help" {
		Usage()
		os.Exit(0)
	}
	index++

	command := firstArg
	_, ok := Commands[command]
	if !ok {
		ExitOnError("unsupported command: %s", command)
	}

	if len(os.Args) < 3 {
		ExitOnError("no enough argument")
	}

	ingester := os.Args[index]
	_, ok = Ingesters[ingester]
	if !ok {
		ExitOnError("unsupported ingester: %s", ingester)
	}
	index++

	// init options to be returned with default values
	opts := make(map[string]string)
	for name, opt := range Options {
		if opt.HasDefaultValue {
			opts[name] = opt.DefaultValue
		}
	}
	// init property to be returned
	props := NewProperties()
	props[PropertyIngester] = ingester
	for i := index; i < len(os.Args); i++ {
		a := os.Args[i]
		for _, p := range OptionPrefixes {
			if strings.HasPrefix(a, p) {
				a = strings.TrimPrefix(a, p)
				break
			}
		}
		option, ok := Options[a]
		if !ok {
			ExitOnError("unknown option: %s", os.Args[i])
		}
		if option.HasArgument {
			i++
			if !(i < len(os.Args)) {
				ExitOnError("missing argument for option: %s", option.Name)
			}
			arg := os.Args[i]
			switch option.Name {
			case "ingester":
				props.Add(PropertyIngester, arg)
			case "table":
				props.Add(PropertyTableName, arg)
			case "p":
				// it's a property, should be in `k=v` form
				parts := strings.SplitN(arg, "=", 2)
				if len(parts) != 2 {
					ExitOnError("invalid property: %s", arg)
				}
				props.Add(parts[0], parts[1])
			case "P":
				propsFromFile, err := LoadProperties(arg)
				if err != nil {
					ExitOnError(err.Error())
				}
				props.Merge(propsFromFile)
			default:
				opts[option.Name] = arg
			}
		} else {
			switch option.Name {
			case "h", "help":
				Usage()
				os.Exit(0)
			default:
				opts[option.Name] = "true"
			}
		}
	}
	return &Arguments{
		Command:    command,
		Ingester:   ingester,
		Options:    opts,
		Properties: props,
	}
}

func Main() {
	args := ParseArgs()
	var client Client
	switch args.Command {
	case "shell":
		client = NewShell(args)
	case "run":
		client = NewRunner(args)
	default:
		ExitOnError("invalid command: %s", args.Command)
	}
	client.Main()
}
