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
	"bufio"
	"io"
	"strconv"

	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bgallie/enigma/letters"
)

var (
	usePem        bool
	groupSize     int
	groupsPerLine int
	remember      bool
)

const pemType = "ENIGMA ENCRYPTED MESSAGE"

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt plaintext using the rotor machine",
	Long: `Encrypt plaintext using the rotor machine.  Everything but the letters A to Z
is dropped from the plaintext; accented letters lose their accents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return encrypt(cmd)
	},
}

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:        "encode",
	Short:      "Encode plaintext using the rotor machine",
	Long:       `[DEPRECATED] Encode plaintext using the rotor machine.`,
	Deprecated: "use \"encrypt\" instead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return encrypt(cmd)
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(encodeCmd)
	for _, c := range []*cobra.Command{encryptCmd, encodeCmd} {
		c.Flags().BoolVarP(&usePem, "usePem", "p", false, "use PEM encoding.")
		c.Flags().IntVarP(&groupSize, "group", "g", 5, "letters per group, 0 writes plain lines.")
		c.Flags().IntVar(&groupsPerLine, "groupsPerLine", 10, "groups per line.")
		c.Flags().BoolVar(&remember, "remember", false, "save the machine settings in the config file.")
	}
}

func encrypt(cmd *cobra.Command) error {
	enigmaMachine, settings, err := initEngine()
	if err != nil {
		return err
	}

	fin, fout, err := getInputAndOutputFiles(cmd, true)
	if err != nil {
		return err
	}

	defer fin.Close()
	defer fout.Close()

	var g errgroup.Group
	left, right := enigmaMachine.Machine()
	encIn := cipherHelper(&g, letters.NewReader(fin), left, right)

	switch {
	case usePem:
		var blck pem.Block
		blck.Type = pemType
		blck.Headers = make(map[string]string)
		blck.Headers["ApiLevel"] = strconv.Itoa(enigmaApiLevel)
		blck.Headers["Machine"] = "Enigma"
		_, err = io.Copy(fout, pem.ToPem(bufio.NewReader(encIn), blck))
	case groupSize > 0:
		gw := letters.NewGroupWriter(fout, groupSize, groupsPerLine)
		_, err = io.Copy(gw, encIn)
		if err == nil {
			err = gw.Close()
		}
	default:
		_, err = io.Copy(fout, lines.SplitToLines(encIn))
	}

	if err != nil {
		encIn.CloseWithError(err)
		_ = g.Wait()
		return err
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info().
		Uint64("letters", enigmaMachine.Index()).
		Str("positions", enigmaMachine.Positions()).
		Msg("message encrypted")

	if remember {
		return rememberSettings(settings)
	}

	return nil
}
