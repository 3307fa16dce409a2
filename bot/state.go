// Copyright (c) 2026 TTBT Enterprises LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bot

import "fmt"

// State is where a session is in its linear script.
type State int

const (
	NotStarted State = iota
	LoggedIn
	RewardClaimed
	NoRewardAvailable
	Failed
	Closed
)

var stateNames = map[State]string{
	NotStarted:        "NotStarted",
	LoggedIn:          "LoggedIn",
	RewardClaimed:     "RewardClaimed",
	NoRewardAvailable: "NoRewardAvailable",
	Failed:            "Failed",
	Closed:            "Closed",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var transitions = map[State][]State{
	NotStarted:        {LoggedIn, Failed, Closed},
	LoggedIn:          {RewardClaimed, NoRewardAvailable, Failed, Closed},
	RewardClaimed:     {Closed},
	NoRewardAvailable: {Closed},
	Failed:            {Closed},
}

// CanTransition reports whether the script may move from one state to another.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ClaimOutcome is the result of the reward claim sequence.
type ClaimOutcome int

const (
	ClaimFailed ClaimOutcome = iota
	ClaimSucceeded
	NoClaimableReward
)

func (o ClaimOutcome) String() string {
	switch o {
	case ClaimSucceeded:
		return "claimed"
	case NoClaimableReward:
		return "no_claimable_reward"
	default:
		return "failed"
	}
}
