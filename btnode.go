/*
   Copyright 2021 Joseph Cumines

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

package rete

import bt "github.com/joeycumines/go-behaviortree"

// Node returns e as a single behavior-tree node whose tick runs exactly
// one recognize-act cycle: select one activation via the current
// Strategy, execute its production's actions, and report bt.Running while
// the agenda remains non-empty afterwards, bt.Success once it empties,
// or bt.Failure if the cycle's action returns an *ActionError. This
// mirrors the teacher's own Plan.Node()/Plan.bt() (pabt.go), letting a
// go-rete Engine be embedded as a leaf (or, wrapped in bt.Memorize, a
// supervised branch) of a larger behavior tree the same way a go-pabt
// Plan embeds its own planner.
func (e *Engine) Node() bt.Node {
	return bt.New(e.tick)
}

func (e *Engine) tick([]bt.Node) (bt.Status, error) {
	fired, err := e.Run(1)
	if err != nil {
		return bt.Failure, err
	}
	if fired == 0 {
		return bt.Success, nil
	}
	if len(e.Agenda()) == 0 {
		return bt.Success, nil
	}
	return bt.Running, nil
}
