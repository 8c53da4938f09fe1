// Copyright Project Taskd Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/projecttaskd/taskd/internal/build"
)

func main() {
	log := logrus.StandardLogger()

	app := kingpin.New("taskd", "Distributed task scheduler server.")
	app.HelpFlag.Short('h')

	serve, serveCtx := registerServe(app)
	version := app.Command("version", "Build information for taskd.")

	args := os.Args[1:]
	switch kingpin.MustParse(app.Parse(args)) {
	case serve.FullCommand():
		// Parse args a second time so cli flags are applied
		// on top of any values sourced from -c's config file.
		kingpin.MustParse(app.Parse(args))

		if serveCtx.Config.DebugLog {
			log.SetLevel(logrus.DebugLevel)
		}
		if err := doServe(log, serveCtx); err != nil {
			log.WithError(err).Fatal("failed to start server")
		}
	case version.FullCommand():
		fmt.Print(build.Current())
	default:
		app.Usage(args)
		os.Exit(2)
	}
}
