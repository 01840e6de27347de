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
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bgallie/enigma/machines"
)

// machinesCmd represents the machines command
var machinesCmd = &cobra.Command{
	Use:   "machines",
	Short: "List the rotors and reflectors the machine can be built from",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listParts(cmd)
	},
}

func init() {
	rootCmd.AddCommand(machinesCmd)
}

func listParts(cmd *cobra.Command) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Part", "Name", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "Turnover"})

	for _, name := range machines.RotorNames() {
		spec := machines.Rotors[name]
		t.AppendRow(table.Row{"Rotor", name, spec.Wiring, spec.Turnovers})
	}

	t.AppendSeparator()
	for _, name := range machines.ReflectorNames() {
		t.AppendRow(table.Row{"Reflector", name, machines.Reflectors[name], ""})
	}

	t.Render()
}
