// This file is part of Consolemix.
//
// Consolemix is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Consolemix is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Consolemix.  If not, see <https://www.gnu.org/licenses/>.

// Package environment provides the context for an instance of the audio
// pipeline. More than one pipeline can exist at once, for example the
// PERFORMANCE mode runs a pipeline alongside the main one, and the
// environment is how the instances are told apart.
package environment

import (
	"github.com/consolemix/consolemix/hardware/preferences"
)

// Label is used to name the environment.
type Label string

// MainPipeline is the label of the environment of the main pipeline.
const MainPipeline = Label("")

// Environment is used to provide context for a pipeline.
type Environment struct {
	Label Label

	// the audio preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance is
// created. Providing a non-nil value allows the preferences of more than one
// pipeline to be shared.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in a known default state.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}

// IsMainPipeline returns true if the environment is for the main pipeline.
func (env *Environment) IsMainPipeline() bool {
	return env.Label == MainPipeline
}

// IsPipeline checks the environment label and returns true if it matches.
func (env *Environment) IsPipeline(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// pipeline is allowed to log.
func (env *Environment) AllowLogging() bool {
	return env.IsMainPipeline()
}
