// Package dom adapts parsed HTML documents to the small element surface the
// directive resolver needs: attribute lookup and a parent link.
//
// Documents are parsed with golang.org/x/net/html. Any other tree can take part
// by implementing Element.
//
//	root, err := dom.Parse(strings.NewReader(page))
//	if err != nil {
//		return err
//	}
//	btn, ok := dom.FindByID(root, "save")
//	if !ok {
//		return errors.New("no trigger")
//	}
//	if el, ok := dom.Closest(btn, "hx-success-target"); ok {
//		v, _ := el.Attr("hx-success-target")
//		fmt.Println(v)
//	}
package dom
