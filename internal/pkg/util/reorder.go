package util

// Direction 上移或下移
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// SwapTarget 计算与 index 交换的位置；越界或列表不足两项时 ok=false
func SwapTarget(n, index int, dir Direction) (int, bool) {
	if n < 2 || index < 0 || index >= n {
		return 0, false
	}
	switch dir {
	case Up:
		if index == 0 {
			return 0, false
		}
		return index - 1, true
	case Down:
		if index == n-1 {
			return 0, false
		}
		return index + 1, true
	default:
		return 0, false
	}
}

// Move 返回交换后的新切片，不可移动时原样返回
func Move[T any](items []T, index int, dir Direction) ([]T, bool) {
	j, ok := SwapTarget(len(items), index, dir)
	if !ok {
		return items, false
	}
	out := make([]T, len(items))
	copy(out, items)
	out[index], out[j] = out[j], out[index]
	return out, true
}
