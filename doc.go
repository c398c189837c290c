// locgen generates synthetic integer workloads with a configurable access
// locality skew, for feeding cache and memory benchmarks.
//
// A workload is a flat file of space separated integers, each an index into an
// array of 4 byte integers whose total size is given in megabytes. A fixed
// percentage of the key space at the front of the array is "hot". Each element
// of the workload is drawn either from the hot range or from the remaining cold
// range, the choice being made by a deterministically seeded decision source so
// that the pattern of hot and cold accesses is reproducible between runs.
//
// 1. locality
//
//    The locality package holds the generator itself: the Config describing
//    the size and skew of a workload, the Generator which owns the decision
//    and value random sources, and Main which validates a Config, generates
//    the sequence and writes it out.
//
// 2. cmd
//
//    The cmd package wraps locality.Main in a cobra command, layering
//    configuration from flags, the environment, and an optional TOML file.
//
// 3. termstat
//
//    Counters reported by the generator through the Statter interface can be
//    summarized on the terminal with a termstat.Collector.
package locgen
