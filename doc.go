// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package vsearch is the overall repository for a visual search experiment
that compares spatial search (finding a target among items laid out in an
array) with temporal search (detecting a target in a rapid serial stream
of items shown one at a time at fixation).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* stim: the Stimulus Factory, which builds the target and distractor pool
for colored squares or tilted lines from the target-distractor and
distractor-distractor similarity factors.

* layout: the Array Layout Generator, placing items on a ring or a
centered grid of cells.

* stream: the Stream Builder, producing repeated-target streams with
randomized distractor runs, or windowed streams of fixed set size.

* evclock: the event clock, with simulated and wall-clock time sources,
trial timelines of labeled tickets, and count-downs.

* respond: input events, the cursor and button listeners, and the
Collector that gathers responses until a response, timeout, or the
end of a stream.

* display: the rendering sink the experiment draws into, and a headless
Recorder.

* expt: the session configuration, params, the trial design environment,
and the Trial Timeline Controller that runs each trial.

* results: trial records and the trial / response logs, streamed to CSV.

* runctl: start / step / pause / stop control of a running session.

* participant: a simulated observer that responds to what is displayed.

* examples/vsearch: a command-line program running a full session.
*/
package vsearch
