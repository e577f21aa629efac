package matching

import "math"

// CosineSimilarity returns the cosine of the angle between two vectors,
// clamped to [0,1]. Embeddings from the same encoder family land in the
// non-negative range for natural-language text, but the clamp guards the
// composite score against pathological inputs. Mismatched lengths or a
// zero vector yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}
