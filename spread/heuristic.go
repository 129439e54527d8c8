// Copyright 2025 go-spreadsort Authors
//
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

package spread

import "math/bits"

// roughLog2 returns the number of significant bits in v.
func roughLog2(v uint64) int {
	return bits.Len64(v)
}

// logDivisor picks how many low key bits stay undiscriminated by the current
// distribution pass, given the sub-range length and the number of significant
// bits spanning its keys. A return of 0 means the pass consumes the whole
// remaining range. The result is always in [0, logRange), so every pass
// discriminates at least one bit and produces at least two buckets.
func (o *options) logDivisor(count, logRange int) int {
	// If one pass can finish within the finishing-splits budget, take it.
	logDiv := logRange - bits.Len(uint(count))
	if logDiv <= 0 && logRange <= o.maxFinishingSplits {
		return 0
	}
	// Otherwise aim for mean buckets of 2^logMeanBinSize elements.
	logDiv += o.logMeanBinSize
	if logDiv < 0 {
		logDiv = 0
	}
	// The fan-out cannot exceed 2^maxSplits buckets.
	if logRange-logDiv > o.maxSplits {
		logDiv = logRange - o.maxSplits
	}
	if logDiv >= logRange {
		logDiv = logRange - 1
	}
	return logDiv
}

// minDistributionCount returns the smallest bucket size for which continued
// distribution is expected to beat the fallback comparison sort, given the
// number of significant key bits still undiscriminated. Distribution costs
// O(n + buckets) per pass, so once the per-element bit budget outweighs
// log2(n) the comparison sort wins.
func (o *options) minDistributionCount(logRemaining int) int {
	minBits := o.logMeanBinSize + o.logMinSplitCount
	if logRemaining <= minBits {
		return 1 << logRemaining
	}
	// Later passes are charged one extra doubling each, modeling the growing
	// number of passes needed to clear the remaining range.
	result := o.logMinSplitCount
	for offset := minBits; offset < logRemaining; {
		result++
		offset += result
	}
	shift := result + o.logMeanBinSize
	if shift > 62 {
		shift = 62
	}
	return 1 << shift
}
