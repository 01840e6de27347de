/*
Copyright © 2021 Billy G. Allie <bill.allie@defiant.mug.org>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/engine"
	"github.com/bgallie/enigma/keysheet"
	"github.com/bgallie/enigma/logging"
	"github.com/bgallie/enigma/machines"
)

var (
	cfgFile        string
	inputFileName  string
	outputFileName string
	keysheetName   string
	day            int
	logger         = zerolog.Nop()
	Version        string = "dev"
)

const (
	enigmaConfigFile = ".enigma"
	enigmaApiLevel   = 1
	enigmaSuffix     = ".enigma"
)

// machineKeys are the settings that may come from flags, the environment or
// the config file.
var machineKeys = []string{"reflector", "rotors", "rings", "positions", "plugboard", "doubleStep", "logLevel", "logOutput"}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "enigma",
	Short:        "A rotor cipher machine",
	Long:         `enigma encrypts and decrypts messages the way the three rotor Enigma I and M3 machines did.`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.enigma.yaml)")
	pf.StringVarP(&inputFileName, "inputFile", "i", "-", "Name of the plaintext file to encrypt/decrypt.")
	pf.StringVarP(&outputFileName, "outputFile", "o", "", "Name of the file containing the encrypted/decrypted plaintext.")
	pf.StringVar(&keysheetName, "keysheet", "", "YAML key list to take the machine settings from.")
	pf.IntVar(&day, "day", 1, "day of the key list to use.")
	pf.StringP("reflector", "u", "B", "reflector (Umkehrwalze) to use.")
	pf.StringP("rotors", "w", "I II III", "wheel order, left to right.")
	pf.StringP("rings", "r", "01 01 01", `ring settings, left to right, as numbers ("02 21 12") or letters ("BUL").`)
	pf.StringP("positions", "s", "AAA", "starting window letters, left to right.")
	pf.StringP("plugboard", "k", "", `plugboard pairs, e.g. "AV BS CG".`)
	pf.Bool("doubleStep", false, "let the middle rotor double step like the wartime machines.")
	pf.String("logLevel", "warn", "log level (trace, debug, info, warn, error).")
	pf.String("logOutput", "console", "log output (console, stdout, stderr, json).")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".enigma" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(enigmaConfigFile)
	}

	viper.SetEnvPrefix("enigma")
	viper.AutomaticEnv() // read in environment variables that match
	for _, key := range machineKeys {
		cobra.CheckErr(viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)))
	}

	// If a config file is found, read it in.
	cfgErr := viper.ReadInConfig()

	var err error
	logger, err = logging.Provide(logging.Config{
		LogOutput: viper.GetString("logOutput"),
		LogLevel:  viper.GetString("logLevel"),
	})
	cobra.CheckErr(err)

	if cfgErr == nil {
		logger.Info().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	}
}

// machineSettings collects the machine settings.  A setting given as a flag,
// in the environment or in the config file overrides the key list.
func machineSettings() (machines.Settings, error) {
	var s machines.Settings
	fromSheet := keysheetName != ""
	if fromSheet {
		sheet, err := keysheet.LoadFile(keysheetName)
		if err != nil {
			return s, err
		}

		s, err = sheet.Day(day)
		if err != nil {
			return s, err
		}

		logger.Debug().Str("keysheet", sheet.Name).Int("day", day).Msg("using key list")
	}

	use := func(key string) bool {
		return !fromSheet || viper.IsSet(key)
	}

	if use("reflector") {
		s.Reflector = viper.GetString("reflector")
	}

	if use("rotors") {
		names, err := machines.ParseRotors(viper.GetString("rotors"))
		if err != nil {
			return s, err
		}

		s.Rotors = names
	}

	if use("rings") {
		rings, err := machines.ParseRings(viper.GetString("rings"))
		if err != nil {
			return s, err
		}

		s.Rings = rings
	}

	if use("positions") {
		s.Positions = viper.GetString("positions")
	}

	if use("plugboard") {
		s.Plugboard = viper.GetString("plugboard")
	}

	if use("doubleStep") {
		s.DoubleStep = viper.GetBool("doubleStep")
	}

	return s, nil
}

// initEngine builds the machine described by the current settings.
func initEngine() (*engine.Engine, machines.Settings, error) {
	s, err := machineSettings()
	if err != nil {
		return nil, s, err
	}

	e, err := machines.Build(s, engine.WithLogger(logger))
	if err != nil {
		return nil, s, err
	}

	logger.Debug().
		Str("reflector", s.Reflector).
		Strs("rotors", s.Rotors[:]).
		Ints("rings", s.Rings[:]).
		Str("positions", e.Positions()).
		Bool("doubleStep", s.DoubleStep).
		Msg("machine ready")
	return e, s, nil
}

// rememberSettings stores the machine settings in the config file.
func rememberSettings(s machines.Settings) error {
	viper.Set("reflector", s.Reflector)
	viper.Set("rotors", strings.Join(s.Rotors[:], " "))
	viper.Set("rings", fmt.Sprintf("%02d %02d %02d", s.Rings[0], s.Rings[1], s.Rings[2]))
	viper.Set("positions", s.Positions)
	viper.Set("plugboard", s.Plugboard)
	viper.Set("doubleStep", s.DoubleStep)

	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = viper.SafeWriteConfig()
	}

	return err
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

/*
getInputAndOutputFiles will return the input and output files to use while
encrypting/decrypting data.  If input and/or output files names were given,
then those files will be opened.  Otherwise stdin and stdout are used.
*/
func getInputAndOutputFiles(cmd *cobra.Command, encrypt bool) (io.ReadCloser, io.WriteCloser, error) {
	var fin io.ReadCloser
	if len(inputFileName) > 0 && inputFileName != "-" {
		f, err := os.Open(inputFileName)
		if err != nil {
			return nil, nil, err
		}

		fin = f
	} else {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			fmt.Fprintln(os.Stderr, "Enter the message, end it with Ctrl-D:")
		}

		fin = io.NopCloser(in)
	}

	var fout io.WriteCloser = nopWriteCloser{cmd.OutOrStdout()}
	var err error

	switch {
	case outputFileName == "-":
	case len(outputFileName) > 0:
		fout, err = os.Create(outputFileName)
	case len(inputFileName) == 0 || inputFileName == "-":
	case encrypt:
		fout, err = os.Create(inputFileName + enigmaSuffix)
	case strings.HasSuffix(inputFileName, enigmaSuffix):
		fout, err = os.Create(strings.TrimSuffix(inputFileName, enigmaSuffix))
	}

	if err != nil {
		fin.Close()
		return nil, nil, err
	}

	return fin, fout, nil
}

// cipherHelper feeds the letters read from rdr through the machine and
// returns a reader of the resulting letters.  The machine is shut down when
// rdr is exhausted.
func cipherHelper(g *errgroup.Group, rdr io.Reader, left chan cryptors.Block, right chan cryptors.Block) *io.PipeReader {
	rRdr, rWrtr := io.Pipe()
	g.Go(func() error {
		defer func() {
			// shutdown the machine by processing a Block with zero
			// value length field.
			var blk cryptors.Block
			left <- blk
			<-right
		}()

		b := make([]byte, cryptors.BlockSize)
		for {
			cnt, err := rdr.Read(b)
			if cnt > 0 {
				blk := cryptors.Block{Length: int8(cnt)}
				for i, c := range b[:cnt] {
					sym, serr := cryptors.FromLetter(rune(c))
					if serr != nil {
						rWrtr.CloseWithError(serr)
						return serr
					}

					blk.Symbols[i] = sym
				}

				left <- blk
				blk = <-right
				out := make([]byte, blk.Length)
				for i := range out {
					out[i] = byte(blk.Symbols[i].Letter())
				}

				if _, werr := rWrtr.Write(out); werr != nil {
					return werr
				}
			}

			if err == io.EOF {
				return rWrtr.Close()
			}

			if err != nil {
				rWrtr.CloseWithError(err)
				return err
			}
		}
	})

	return rRdr
}
