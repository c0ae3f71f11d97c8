package catalog

import (
	"time"

	"github.com/avaldes/coursehub/pkg/course"
)

// SeedCourses returns the demonstration set loaded into an empty catalog on
// first access. A bootstrap convenience only; nothing in the model depends
// on these records.
func SeedCourses() []course.Course {
	return []course.Course{
		{
			ID:          "javascript-intro-001",
			Title:       "Introducción a JavaScript",
			Description: "Aprende los fundamentos de JavaScript desde cero. Variables, funciones, DOM y más.",
			Content: []course.ContentElement{
				{ID: "intro-title", Type: course.TypeHeading1, Payload: "¿Qué es JavaScript?"},
				{ID: "intro-para", Type: course.TypeParagraph, Payload: "JavaScript es un lenguaje de programación dinámico que se utiliza principalmente para crear páginas web interactivas. Es uno de los lenguajes más populares del mundo y es esencial para el desarrollo web moderno."},
				{ID: "variables-title", Type: course.TypeHeading2, Payload: "Variables y Tipos de Datos"},
				{ID: "variables-code", Type: course.TypeCode, Payload: "// Declaración de variables\nlet nombre = \"Juan\";\nconst edad = 25;\nvar activo = true;\n\n// Tipos de datos básicos\nlet numero = 42;\nlet texto = \"Hola mundo\";\nlet arreglo = [1, 2, 3, 4, 5];"},
			},
			CreatedAt:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			Author:        "María González",
			EstimatedTime: 15,
			Views:         234,
		},
		{
			ID:          "react-basics-002",
			Title:       "React para Principiantes",
			Description: "Descubre el poder de React. Componentes, props, estado y hooks explicados de forma simple.",
			Content: []course.ContentElement{
				{ID: "react-intro", Type: course.TypeHeading1, Payload: "Introducción a React"},
				{ID: "react-para", Type: course.TypeParagraph, Payload: "React es una biblioteca de JavaScript para construir interfaces de usuario. Desarrollada por Facebook, se ha convertido en una de las herramientas más populares para el desarrollo frontend."},
				{ID: "component-title", Type: course.TypeHeading2, Payload: "Tu Primer Componente"},
				{ID: "component-code", Type: course.TypeCode, Payload: "function Saludo({ nombre }) {\n  return <h1>¡Hola, {nombre}!</h1>;\n}\n\nfunction App() {\n  return (\n    <div>\n      <Saludo nombre=\"Mundo\" />\n    </div>\n  );\n}"},
			},
			CreatedAt:     time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
			Author:        "Carlos Ruiz",
			EstimatedTime: 12,
			Views:         189,
		},
		{
			ID:          "css-flexbox-003",
			Title:       "CSS Flexbox Completo",
			Description: "Domina Flexbox y crea layouts responsivos como un profesional. Ejemplos prácticos incluidos.",
			Content: []course.ContentElement{
				{ID: "flexbox-intro", Type: course.TypeHeading1, Payload: "CSS Flexbox: La Guía Completa"},
				{ID: "flexbox-para", Type: course.TypeParagraph, Payload: "Flexbox es un método de diseño CSS que facilita la creación de layouts flexibles y responsivos. Con flexbox puedes alinear, distribuir y organizar elementos de manera eficiente."},
				{ID: "flex-container", Type: course.TypeHeading2, Payload: "Contenedor Flex"},
				{ID: "flex-code", Type: course.TypeCode, Payload: ".container {\n  display: flex;\n  justify-content: center;\n  align-items: center;\n  height: 100vh;\n}\n\n.item {\n  flex: 1;\n  padding: 20px;\n  margin: 10px;\n}"},
			},
			CreatedAt:     time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			Author:        "Ana Martínez",
			EstimatedTime: 8,
			Views:         156,
		},
	}
}
