package benchmark

// allocationChunkMB is the granularity the per-job data set size is rounded
// down to.
const allocationChunkMB = 100

// useFraction is the share of the device's free space a run may consume.
const useFraction = 0.8

// PerJobDataSizeMB sizes every job's data set from the device's free space:
// 80% of it split evenly across the jobs, rounded down to a 100 MB multiple
// and capped at maxMB. All jobs of a run get the same size; request size and
// shares do not weight the split.
func PerJobDataSizeMB(freeBytes uint64, jobs int, maxMB int64) int64 {
	perJob := int64(float64(freeBytes)*useFraction/float64(jobs)/(allocationChunkMB*1024*1024)) * allocationChunkMB
	if perJob > maxMB {
		perJob = maxMB
	}
	return perJob
}
