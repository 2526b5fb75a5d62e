package usecase

import "catalog/internal/domain/model"

// TagDelta は現在の紐付けを希望状態へ変換する最小の差分。
// ToCreateとToRemoveは互いに素。両方の集合にあるタグは触らない。
type TagDelta struct {
	ToCreate []model.ProductTag // 新規に作る紐付け行（IDなし）
	ToRemove []int64            // 削除する紐付け行のID
}

func (d TagDelta) Empty() bool {
	return len(d.ToCreate) == 0 && len(d.ToRemove) == 0
}

// ReconcileTags は純粋な差分計算。ストレージには一切触れない。
//
//   - desired − current → ToCreate（{product_id, tag_id} の行として）
//   - tag_id が desired にない現在行 → その行IDを ToRemove へ
//
// desired内の重複は1件として扱う。存在しないタグIDはそのまま通す
// （実在チェックは永続化層のFK制約の仕事）。
// desired が空スライスなら現在の紐付けを全て削除する意味になる。
// 「指定なし（no-op）」の区別は呼び出し側がnilで表現する。
func ReconcileTags(productID int64, current []model.ProductTag, desired []int64) TagDelta {
	currentTagIDs := make(map[int64]struct{}, len(current))
	for _, row := range current {
		currentTagIDs[row.TagID] = struct{}{}
	}

	var delta TagDelta

	seen := make(map[int64]struct{}, len(desired))
	for _, tagID := range desired {
		if _, dup := seen[tagID]; dup {
			continue
		}
		seen[tagID] = struct{}{}

		if _, exists := currentTagIDs[tagID]; !exists {
			delta.ToCreate = append(delta.ToCreate, model.ProductTag{
				ProductID: productID,
				TagID:     tagID,
			})
		}
	}

	for _, row := range current {
		if _, keep := seen[row.TagID]; !keep {
			delta.ToRemove = append(delta.ToRemove, row.ID)
		}
	}

	return delta
}
