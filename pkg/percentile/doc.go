// Package percentile computes, for every statistic column and every
// distinct value it takes across all tilings, that value's frequency and
// percentile rank (§4.7).
//
// percent_rank is computed over distinct values, ascending, fixed per the
// spec's own resolution of its open question: rank(v among distinct values
// of s, ordered ascending) / (count_of_distinct_values(s) - 1) * 100,
// clamped to [0, 100].
package percentile
