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
	"fmt"
	"io"
	"strconv"

	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bgallie/enigma/letters"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a message encrypted by the rotor machine.",
	Long: `Decrypt a message encrypted by the rotor machine.  The machine must be set up
exactly as it was for encryption.  Both grouped text and PEM encoded messages are accepted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return decrypt(cmd)
	},
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:        "decode",
	Short:      "Decode a message encoded by the rotor machine.",
	Long:       `[DEPRECATED] Decode a message encoded by the rotor machine.`,
	Deprecated: "use \"decrypt\" instead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return decrypt(cmd)
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(decodeCmd)
}

func decrypt(cmd *cobra.Command) error {
	enigmaMachine, _, err := initEngine()
	if err != nil {
		return err
	}

	fin, fout, err := getInputAndOutputFiles(cmd, false)
	if err != nil {
		return err
	}

	defer fin.Close()
	defer fout.Close()

	var aRdr io.Reader
	bRdr := bufio.NewReader(fin)
	b, err := bRdr.Peek(5)
	if err != nil && err != io.EOF {
		return err
	}

	if string(b) == "-----" {
		pRdr, blck := pem.FromPem(bRdr)
		fal, exists := blck.Headers["ApiLevel"]
		if !exists {
			fal = "-1"
		}

		fileApiLevel, _ := strconv.Atoi(fal)
		if fileApiLevel != enigmaApiLevel {
			pRdr.Close()
			return fmt.Errorf("API Level mismatch. FileApiLevel: %d, EnigmaApiLevel: %d", fileApiLevel, enigmaApiLevel)
		}

		logger.Debug().Str("type", blck.Type).Str("machine", blck.Headers["Machine"]).Msg("reading PEM message")
		aRdr = pRdr
	} else {
		aRdr = lines.CombineLines(bRdr)
	}

	var g errgroup.Group
	left, right := enigmaMachine.Machine()
	decOut := cipherHelper(&g, letters.NewReader(aRdr), left, right)
	_, err = io.Copy(fout, lines.SplitToLines(decOut))
	if err != nil {
		decOut.CloseWithError(err)
		_ = g.Wait()
		return err
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info().
		Uint64("letters", enigmaMachine.Index()).
		Str("positions", enigmaMachine.Positions()).
		Msg("message decrypted")
	return nil
}
